package ranking

import "context"

// MemberPager enumerates the members holding one role, a page at a time.
// It is lazy (each Next issues one listing call) and restartable only
// from scratch: there is no way to resume mid-stream.
type MemberPager struct {
	api     GroupAPI
	groupID int64
	roleID  int64
	limit   int

	cursor string
	done   bool
}

// NewMemberPager starts an enumeration at the first page.
func NewMemberPager(api GroupAPI, groupID, roleID int64, limit int) *MemberPager {
	if limit <= 0 {
		limit = PageLimit
	}
	return &MemberPager{api: api, groupID: groupID, roleID: roleID, limit: limit}
}

// Next returns the next page of member user ids, or nil when the
// enumeration is exhausted. An empty page ends the enumeration even when
// the platform handed back a cursor; a page with members but no cursor
// ends it after that page is returned.
func (p *MemberPager) Next(ctx context.Context) ([]int64, error) {
	if p.done {
		return nil, nil
	}

	page, err := p.api.RoleMembers(ctx, p.groupID, p.roleID, p.limit, p.cursor)
	if err != nil {
		p.done = true
		return nil, err
	}

	if len(page.Members) == 0 {
		p.done = true
		return nil, nil
	}

	if page.NextCursor == "" {
		p.done = true
	} else {
		p.cursor = page.NextCursor
	}
	return page.UserIDs(), nil
}
