package ranking

import (
	"context"
	"errors"
	"time"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// RoleAssigner performs the idempotent rank-set call. A member already
// holding the target role is a success, not an error.
type RoleAssigner struct {
	api     GroupAPI
	groupID int64
	policy  Policy
}

// NewRoleAssigner creates an assigner with the standard retry budget.
func NewRoleAssigner(api GroupAPI, groupID int64, cooldown time.Duration) *RoleAssigner {
	return &RoleAssigner{
		api:     api,
		groupID: groupID,
		policy: Policy{
			Operation:   "Set group member role",
			MaxAttempts: SetMemberRoleRetries,
			Cooldown:    cooldown,
		},
	}
}

// Assign ensures the member holds the target role. An invalid credential
// aborts immediately; rate limits wait out the cooldown; the platform's
// already-has-role code resolves to success.
func (a *RoleAssigner) Assign(ctx context.Context, userID, roleID int64) error {
	return a.policy.Do(ctx, classifyAssignment, func(ctx context.Context) error {
		return a.api.SetMemberRole(ctx, a.groupID, userID, roleID)
	})
}

func classifyAssignment(err error) Action {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return ActionFatal
	case errors.Is(err, domain.ErrRateLimited):
		return ActionCooldown
	case domain.IsAlreadyHasRole(err):
		return ActionResolve
	}
	return ActionRetry
}
