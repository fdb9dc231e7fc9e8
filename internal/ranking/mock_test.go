package ranking

import (
	"context"
	"testing"

	"github.com/vietddude/ranksync/internal/core/domain"
)

// mockAPI implements GroupAPI with overridable call hooks.
type mockAPI struct {
	groupRoles    func(ctx context.Context, groupID int64) ([]domain.Role, error)
	roleMembers   func(ctx context.Context, groupID, roleID int64, limit int, cursor string) (*domain.MemberPage, error)
	userDetails   func(ctx context.Context, userID int64) (*domain.UserDetail, error)
	setMemberRole func(ctx context.Context, groupID, userID, roleID int64) error
}

func (m *mockAPI) GroupRoles(ctx context.Context, groupID int64) ([]domain.Role, error) {
	if m.groupRoles == nil {
		return nil, nil
	}
	return m.groupRoles(ctx, groupID)
}

func (m *mockAPI) RoleMembers(ctx context.Context, groupID, roleID int64, limit int, cursor string) (*domain.MemberPage, error) {
	if m.roleMembers == nil {
		return &domain.MemberPage{}, nil
	}
	return m.roleMembers(ctx, groupID, roleID, limit, cursor)
}

func (m *mockAPI) UserDetails(ctx context.Context, userID int64) (*domain.UserDetail, error) {
	if m.userDetails == nil {
		return &domain.UserDetail{}, nil
	}
	return m.userDetails(ctx, userID)
}

func (m *mockAPI) SetMemberRole(ctx context.Context, groupID, userID, roleID int64) error {
	if m.setMemberRole == nil {
		return nil
	}
	return m.setMemberRole(ctx, groupID, userID, roleID)
}

func members(ids ...int64) []domain.Member {
	ms := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		ms = append(ms, domain.Member{UserID: id})
	}
	return ms
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
