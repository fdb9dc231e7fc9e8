package roblox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vietddude/ranksync/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(domain.NewSecret("test-cookie"), WithBaseURLs(srv.URL, srv.URL))
	return client, srv
}

func TestGroupRoles(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/groups/42/roles" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if c, err := r.Cookie(".ROBLOSECURITY"); err != nil || c.Value != "test-cookie" {
			t.Errorf("security cookie not sent")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"groupId": 42,
			"roles": []map[string]any{
				{"id": 10, "name": "Vintage", "rank": 1, "memberCount": 5},
				{"id": 30, "name": "Member", "rank": 2, "memberCount": 100},
			},
		})
	}))

	roles, err := client.GroupRoles(context.Background(), 42)
	if err != nil {
		t.Fatalf("GroupRoles: %v", err)
	}
	if len(roles) != 2 || roles[0].ID != 10 || roles[0].Name != "Vintage" || roles[1].MemberCount != 100 {
		t.Errorf("unexpected roles: %+v", roles)
	}
}

func TestRoleMembers_CursorHandling(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/groups/42/roles/10/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "100" {
			t.Errorf("limit = %q, want 100", q.Get("limit"))
		}
		switch q.Get("cursor") {
		case "":
			json.NewEncoder(w).Encode(map[string]any{
				"previousPageCursor": nil,
				"nextPageCursor":     "page2",
				"data":               []map[string]any{{"userId": 1}, {"userId": 2}},
			})
		case "page2":
			json.NewEncoder(w).Encode(map[string]any{
				"previousPageCursor": "page1",
				"nextPageCursor":     nil,
				"data":               []map[string]any{{"userId": 3}},
			})
		default:
			t.Errorf("unexpected cursor %q", q.Get("cursor"))
		}
	}))

	page, err := client.RoleMembers(context.Background(), 42, 10, 100, "")
	if err != nil {
		t.Fatalf("RoleMembers: %v", err)
	}
	if page.NextCursor != "page2" || len(page.Members) != 2 {
		t.Fatalf("unexpected first page: %+v", page)
	}

	page, err = client.RoleMembers(context.Background(), 42, 10, 100, page.NextCursor)
	if err != nil {
		t.Fatalf("RoleMembers: %v", err)
	}
	if page.NextCursor != "" || len(page.Members) != 1 || page.Members[0].UserID != 3 {
		t.Fatalf("unexpected second page: %+v", page)
	}
}

func TestUserDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      7,
			"name":    "builderman",
			"created": "2006-02-27T21:06:40.3Z",
		})
	}))

	detail, err := client.UserDetails(context.Background(), 7)
	if err != nil {
		t.Fatalf("UserDetails: %v", err)
	}
	if detail.ID != 7 || detail.Created != "2006-02-27T21:06:40.3Z" {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestSetMemberRole_CSRFHandshake(t *testing.T) {
	var tokens []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		tokens = append(tokens, r.Header.Get("x-csrf-token"))
		if r.Header.Get("x-csrf-token") == "" {
			w.Header().Set("x-csrf-token", "fresh-token")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var body struct {
			RoleID int64 `json:"roleId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RoleID != 10 {
			t.Errorf("unexpected body roleId=%d err=%v", body.RoleID, err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.SetMemberRole(context.Background(), 42, 7, 10); err != nil {
		t.Fatalf("SetMemberRole: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "" || tokens[1] != "fresh-token" {
		t.Fatalf("expected handshake replay with fresh token, got %v", tokens)
	}

	// Token is cached: the next call carries it up front.
	if err := client.SetMemberRole(context.Background(), 42, 7, 10); err != nil {
		t.Fatalf("SetMemberRole: %v", err)
	}
	if len(tokens) != 3 || tokens[2] != "fresh-token" {
		t.Fatalf("expected cached token reuse, got %v", tokens)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, domain.ErrRateLimited) {
					t.Errorf("expected ErrRateLimited, got %v", err)
				}
			},
		},
		{
			name:   "invalid credential",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, domain.ErrInvalidCredential) {
					t.Errorf("expected ErrInvalidCredential, got %v", err)
				}
			},
		},
		{
			name:   "platform error code",
			status: http.StatusBadRequest,
			body:   `{"errors":[{"code":26,"message":"The user already has this role."}]}`,
			check: func(t *testing.T, err error) {
				var pe *domain.PlatformError
				if !errors.As(err, &pe) || pe.Code != 26 {
					t.Errorf("expected PlatformError code 26, got %v", err)
				}
			},
		},
		{
			name:   "unparseable error body",
			status: http.StatusInternalServerError,
			body:   "gateway exploded",
			check: func(t *testing.T, err error) {
				var pe *domain.PlatformError
				if !errors.As(err, &pe) || pe.StatusCode != 500 || pe.Code != 0 {
					t.Errorf("expected PlatformError with http 500, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))
			_, err := client.GroupRoles(context.Background(), 42)
			if err == nil {
				t.Fatal("expected an error")
			}
			tt.check(t, err)
		})
	}
}
