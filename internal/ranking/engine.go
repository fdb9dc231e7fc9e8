package ranking

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/ranksync/internal/core/config"
	"github.com/vietddude/ranksync/internal/core/domain"
	"github.com/vietddude/ranksync/internal/metrics"
)

// Options tunes the engine. The zero value means platform defaults.
type Options struct {
	// PageLimit caps member listing pages; defaults to PageLimit.
	PageLimit int
	// Cooldown overrides the rate-limit cooldown; defaults to
	// RateLimitCooldown. Tests shrink it.
	Cooldown time.Duration
	// DryRun skips the rank-set call but still classifies and reports.
	DryRun bool
	// Report is invoked once per successful assignment.
	Report Reporter
}

// Engine drives the end-to-end sync: resolve roles once, build the year
// index once, then scan roles in config order, classifying and assigning
// one member at a time. All calls are sequential; any component error
// aborts the whole run.
type Engine struct {
	api  GroupAPI
	cfg  *config.Config
	opts Options
}

// New creates an engine for one run over the given config.
func New(api GroupAPI, cfg *config.Config, opts Options) *Engine {
	if opts.PageLimit <= 0 {
		opts.PageLimit = PageLimit
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = RateLimitCooldown
	}
	return &Engine{api: api, cfg: cfg, opts: opts}
}

// Run executes the full sync. Role resolution failures abort before any
// member is fetched or mutated.
func (e *Engine) Run(ctx context.Context) error {
	dir, err := ResolveRoles(ctx, e.api, e.cfg.GroupID, e.cfg.ReferencedRoles())
	if err != nil {
		return err
	}

	index := BuildYearIndex(e.cfg.RoleYearPairs)
	classifier := NewAgeClassifier(e.api, e.opts.Cooldown)
	assigner := NewRoleAssigner(e.api, e.cfg.GroupID, e.opts.Cooldown)

	for _, roleName := range e.cfg.ScannedRoles {
		roleID, ok := dir.ID(roleName)
		if !ok {
			return &domain.RoleNotFoundError{Name: roleName}
		}

		slog.Info("scanning role", "role", roleName, "roleId", roleID)
		pager := NewMemberPager(e.api, e.cfg.GroupID, roleID, e.opts.PageLimit)

		for {
			userIDs, err := pager.Next(ctx)
			if err != nil {
				return err
			}
			if len(userIDs) == 0 {
				break
			}
			metrics.MembersScanned.WithLabelValues(roleName).Add(float64(len(userIDs)))
			slog.Debug("fetched member page", "role", roleName, "members", len(userIDs))

			for _, userID := range userIDs {
				if err := e.syncMember(ctx, dir, index, classifier, assigner, userID); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// syncMember runs one classify-then-assign pair to completion.
func (e *Engine) syncMember(
	ctx context.Context,
	dir *RoleDirectory,
	index YearRoleIndex,
	classifier *AgeClassifier,
	assigner *RoleAssigner,
	userID int64,
) error {
	year, err := classifier.YearCreated(ctx, userID)
	if err != nil {
		return err
	}

	target, ok := index.RoleFor(year)
	if !ok {
		target = e.cfg.WildcardRole
	}
	targetID, ok := dir.ID(target)
	if !ok {
		return &domain.RoleNotFoundError{Name: target}
	}

	if !e.opts.DryRun {
		if err := assigner.Assign(ctx, userID, targetID); err != nil {
			return err
		}
	}

	metrics.Assignments.WithLabelValues(target).Inc()
	if e.opts.Report != nil {
		e.opts.Report(target, userID, year)
	}
	return nil
}
