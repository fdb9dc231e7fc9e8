package ranking

import (
	"context"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// RoleDirectory maps configured role names to platform role ids. It is
// built once per run from a single listing call and read-only afterward.
type RoleDirectory struct {
	byName map[string]int64
}

// ResolveRoles lists the group's roles once and resolves each required
// name by exact match. The first unresolved name aborts the run with
// RoleNotFoundError; nothing is acted on from a partial resolution.
func ResolveRoles(ctx context.Context, api GroupAPI, groupID int64, names []string) (*RoleDirectory, error) {
	roles, err := api.GroupRoles(ctx, groupID)
	if err != nil {
		return nil, err
	}

	platform := make(map[string]int64, len(roles))
	for _, role := range roles {
		platform[role.Name] = role.ID
	}

	dir := &RoleDirectory{byName: make(map[string]int64, len(names))}
	for _, name := range names {
		id, ok := platform[name]
		if !ok {
			return nil, &domain.RoleNotFoundError{Name: name}
		}
		dir.byName[name] = id
	}
	return dir, nil
}

// ID returns the platform id for a resolved role name.
func (d *RoleDirectory) ID(name string) (int64, bool) {
	id, ok := d.byName[name]
	return id, ok
}
