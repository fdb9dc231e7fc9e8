package roblox

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// GroupRoles lists every role defined for the group, in the platform's
// rank order.
func (c *Client) GroupRoles(ctx context.Context, groupID int64) ([]domain.Role, error) {
	var out struct {
		GroupID int64         `json:"groupId"`
		Roles   []domain.Role `json:"roles"`
	}
	endpoint := fmt.Sprintf("%s/v1/groups/%d/roles", c.groupsURL, groupID)
	if err := c.do(ctx, "group_roles", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// RoleMembers fetches one page of the members holding a role. An empty
// cursor requests the first page; the returned page carries the cursor
// for the next one, empty when the listing is exhausted.
func (c *Client) RoleMembers(ctx context.Context, groupID, roleID int64, limit int, cursor string) (*domain.MemberPage, error) {
	endpoint := fmt.Sprintf("%s/v1/groups/%d/roles/%d/users?limit=%d&sortOrder=Asc",
		c.groupsURL, groupID, roleID, limit)
	if cursor != "" {
		endpoint += "&cursor=" + url.QueryEscape(cursor)
	}

	var out struct {
		PreviousPageCursor *string         `json:"previousPageCursor"`
		NextPageCursor     *string         `json:"nextPageCursor"`
		Data               []domain.Member `json:"data"`
	}
	if err := c.do(ctx, "role_members", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}

	page := &domain.MemberPage{Members: out.Data}
	if out.NextPageCursor != nil {
		page.NextCursor = *out.NextPageCursor
	}
	return page, nil
}

// SetMemberRole moves a group member to the given role. The platform
// reports an already-held role as error code 26; that classification is
// left to the caller, which treats it as success.
func (c *Client) SetMemberRole(ctx context.Context, groupID, userID, roleID int64) error {
	endpoint := fmt.Sprintf("%s/v1/groups/%d/users/%d", c.groupsURL, groupID, userID)
	body := struct {
		RoleID int64 `json:"roleId"`
	}{RoleID: roleID}
	return c.do(ctx, "set_member_role", http.MethodPatch, endpoint, body, nil)
}
