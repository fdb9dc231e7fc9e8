package roblox

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// UserDetails fetches the platform's user record, including the raw
// account-creation timestamp.
func (c *Client) UserDetails(ctx context.Context, userID int64) (*domain.UserDetail, error) {
	var out domain.UserDetail
	endpoint := fmt.Sprintf("%s/v1/users/%d", c.usersURL, userID)
	if err := c.do(ctx, "user_details", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
