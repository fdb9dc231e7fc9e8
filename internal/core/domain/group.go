package domain

// Role is a named membership tier within a group, identified by a
// platform-assigned numeric id. Rank is the platform's ordering value.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	MemberCount int    `json:"memberCount"`
}

// Member is one entry in a role's membership listing. Members are
// transient: nothing is kept across pages.
type Member struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// MemberPage is one page of a role's membership listing. NextCursor is
// the opaque continuation token; empty means the listing is exhausted.
type MemberPage struct {
	Members    []Member
	NextCursor string
}

// UserIDs returns the page's member ids in listing order.
func (p *MemberPage) UserIDs() []int64 {
	ids := make([]int64, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// UserDetail is the platform's user record. Created is the raw
// ISO-8601 creation timestamp string; the leading four characters are
// the account-creation year.
type UserDetail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Created     string `json:"created"`
	IsBanned    bool   `json:"isBanned"`
}
