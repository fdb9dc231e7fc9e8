package ranking

// YearRoleIndex maps an account-creation year to the role it earns.
type YearRoleIndex map[int]string

// BuildYearIndex inverts the role→years mapping from the config. Config
// validation guarantees a year appears under at most one role, so the
// result does not depend on map iteration order.
func BuildYearIndex(roleYearPairs map[string][]int) YearRoleIndex {
	index := make(YearRoleIndex)
	for role, years := range roleYearPairs {
		for _, year := range years {
			index[year] = role
		}
	}
	return index
}

// RoleFor looks up the role earned by a creation year.
func (ix YearRoleIndex) RoleFor(year int) (string, bool) {
	role, ok := ix[year]
	return role, ok
}
