package ranking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// AgeClassifier resolves a member's account-creation year from their
// user record. Each classification is one retry-scoped operation.
type AgeClassifier struct {
	api    GroupAPI
	policy Policy
}

// NewAgeClassifier creates a classifier with the standard retry budget.
func NewAgeClassifier(api GroupAPI, cooldown time.Duration) *AgeClassifier {
	return &AgeClassifier{
		api: api,
		policy: Policy{
			Operation:   "Account age",
			MaxAttempts: AccountAgeRetries,
			Cooldown:    cooldown,
		},
	}
}

// YearCreated returns the four-digit account-creation year for a user.
// Rate limits wait out the cooldown; any other failure retries
// immediately until the budget is spent.
func (c *AgeClassifier) YearCreated(ctx context.Context, userID int64) (int, error) {
	var year int
	err := c.policy.Do(ctx, classifyTransient, func(ctx context.Context) error {
		detail, err := c.api.UserDetails(ctx, userID)
		if err != nil {
			return err
		}
		y, err := creationYear(detail.Created)
		if err != nil {
			return err
		}
		year = y
		return nil
	})
	if err != nil {
		return 0, err
	}
	return year, nil
}

func classifyTransient(err error) Action {
	if errors.Is(err, domain.ErrRateLimited) {
		return ActionCooldown
	}
	return ActionRetry
}

// creationYear extracts the year from an ISO-8601 timestamp string. The
// leading four digits being the year is a format contract with the
// platform; nothing beyond them is inspected.
func creationYear(created string) (int, error) {
	if len(created) < 4 {
		return 0, fmt.Errorf("malformed creation timestamp %q", created)
	}
	year, err := strconv.Atoi(created[:4])
	if err != nil {
		return 0, fmt.Errorf("malformed creation timestamp %q: %w", created, err)
	}
	return year, nil
}
