// Package ranking implements the rank-synchronization engine: role
// resolution, year classification, member pagination, and the retry
// machinery that keeps individual API calls alive through rate limits.
package ranking

import (
	"context"
	"time"

	"github.com/vietddude/ranksync/internal/core/domain"
)

const (
	// PageLimit is the platform's maximum page size for member listings.
	PageLimit = 100

	// RateLimitCooldown is how long to wait after a rate-limit signal
	// before the next attempt.
	RateLimitCooldown = 60 * time.Second

	// AccountAgeRetries bounds attempts for one age classification.
	AccountAgeRetries = 5
	// SetMemberRoleRetries bounds attempts for one rank assignment.
	SetMemberRoleRetries = 5
)

// GroupAPI is the slice of the group-management platform the engine
// consumes. internal/infra/roblox provides the production implementation.
type GroupAPI interface {
	// GroupRoles lists every role defined for the group.
	GroupRoles(ctx context.Context, groupID int64) ([]domain.Role, error)
	// RoleMembers fetches one page of members holding a role. An empty
	// cursor requests the first page.
	RoleMembers(ctx context.Context, groupID, roleID int64, limit int, cursor string) (*domain.MemberPage, error)
	// UserDetails fetches a user record by id.
	UserDetails(ctx context.Context, userID int64) (*domain.UserDetail, error)
	// SetMemberRole moves a group member to the given role.
	SetMemberRole(ctx context.Context, groupID, userID, roleID int64) error
}

// Reporter receives one callback per successful assignment: the target
// role name, the member's user id, and the classified creation year.
type Reporter func(roleName string, userID int64, year int)
