package config

import (
	"fmt"
	"sort"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// Config is the full run configuration. It is immutable once loaded:
// nothing mutates it after Load returns.
type Config struct {
	// GroupID identifies the group whose members are ranked.
	GroupID int64 `json:"groupId" yaml:"groupId"`
	// Roblosecurity is the authentication cookie. Redacted everywhere
	// except the auth header.
	Roblosecurity domain.Secret `json:"roblosecurity" yaml:"roblosecurity"`
	// ScannedRoles lists the role names to process, in order.
	ScannedRoles []string `json:"scannedRoles" yaml:"scannedRoles"`
	// RoleYearPairs maps a role name to the account-creation years that
	// earn it. A year may appear under at most one role.
	RoleYearPairs map[string][]int `json:"roleYearPairs" yaml:"roleYearPairs"`
	// WildcardRole is assigned when a member's creation year matches no
	// configured year.
	WildcardRole string `json:"wildcardRole" yaml:"wildcardRole"`

	// Logging controls diagnostic output, not the progress lines.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// Validate checks the invariants the sync engine depends on. A year
// mapped under two roles is rejected here rather than resolved by
// iteration order at index-build time.
func (c *Config) Validate() error {
	if c.GroupID <= 0 {
		return fmt.Errorf("groupId must be a positive group id, got %d", c.GroupID)
	}
	if c.Roblosecurity.IsZero() {
		return fmt.Errorf("roblosecurity must not be empty")
	}
	if len(c.ScannedRoles) == 0 {
		return fmt.Errorf("scannedRoles must list at least one role")
	}
	for i, name := range c.ScannedRoles {
		if name == "" {
			return fmt.Errorf("scannedRoles[%d] is empty", i)
		}
	}
	if c.WildcardRole == "" {
		return fmt.Errorf("wildcardRole must not be empty")
	}

	yearOwner := make(map[int]string)
	for _, role := range sortedRoleNames(c.RoleYearPairs) {
		for _, year := range c.RoleYearPairs[role] {
			if other, taken := yearOwner[year]; taken {
				return fmt.Errorf("year %d is mapped to both %q and %q", year, other, role)
			}
			yearOwner[year] = role
		}
	}
	return nil
}

// ReferencedRoles returns every role name the run depends on, deduplicated:
// scanned roles in config order, then mapped roles in sorted order, then
// the wildcard role. All of them must resolve before any member is touched.
func (c *Config) ReferencedRoles() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range c.ScannedRoles {
		add(name)
	}
	for _, name := range sortedRoleNames(c.RoleYearPairs) {
		add(name)
	}
	add(c.WildcardRole)
	return names
}

func sortedRoleNames(pairs map[string][]int) []string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
