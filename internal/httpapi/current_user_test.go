package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sisgate/gateway-api/internal/store"
	"github.com/sisgate/gateway-api/internal/store/storetest"
)

func TestGetCurrentUserReturnsClaims(t *testing.T) {
	fake := storetest.New()
	id := fake.AddUser(store.User{Email: "ana@example.com", IsActive: true})

	s := newTestServer(t, fake)
	tok := mintToken(t, s, map[string]any{"id": id, "email": "ana@example.com", "is_active": true})

	req := httptest.NewRequest(http.MethodGet, "/administration/users/get_current_user", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	// Not a superuser: get_current_user is exempt from the admin gate.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Result map[string]any `json:"result"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result["email"] != "ana@example.com" {
		t.Fatalf("email = %v", resp.Result["email"])
	}
	if _, leaked := resp.Result["password"]; leaked {
		t.Fatal("password surfaced in current user payload")
	}
}

func TestGetCurrentUserRequiresToken(t *testing.T) {
	s := newTestServer(t, storetest.New())

	req := httptest.NewRequest(http.MethodGet, "/administration/users/get_current_user", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if d := decodeDetail(t, rec); d.Message != "Not authenticated." {
		t.Fatalf("message = %q", d.Message)
	}
}
