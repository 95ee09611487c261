package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/sisgate/gateway-api/internal/store"
	"github.com/sisgate/gateway-api/internal/store/storetest"
)

func policyFixture() (*storetest.Fake, int64) {
	fake := storetest.New()
	userID := fake.AddUser(store.User{Email: "a@b.c", IsActive: true})
	fake.Endpoints["/reports/export"] = &store.Endpoint{URL: "/reports/export", Method: "GET", Authenticated: true}
	fake.SystemsByURL["/reports/export"] = []string{"SYS"}
	return fake, userID
}

func TestUserAccessControl_Allowlist(t *testing.T) {
	fake := storetest.New()
	engine := NewEngine(fake)

	for _, path := range []string{
		"/administration/users/get_current_user",
		"/authentication/renew/token",
		"/authentication/keys/public_key",
	} {
		ok, err := engine.UserAccessControl(context.Background(), 999, path)
		if err != nil || !ok {
			t.Errorf("allowlisted path %s: ok=%v err=%v", path, ok, err)
		}
	}
}

func TestUserAccessControl_ActiveSuperuserShortCircuits(t *testing.T) {
	fake := storetest.New()
	id := fake.AddUser(store.User{Email: "root@b.c", IsActive: true, IsSuperuser: true})
	engine := NewEngine(fake)

	// Superuser allows even before the endpoint lookup would 404.
	ok, err := engine.UserAccessControl(context.Background(), id, "/gateway/anything/at/all")
	if err != nil || !ok {
		t.Fatalf("superuser: ok=%v err=%v", ok, err)
	}
}

func TestUserAccessControl_InactiveSuperuserDoesNotShortCircuit(t *testing.T) {
	fake := storetest.New()
	id := fake.AddUser(store.User{Email: "off@b.c", IsActive: false, IsSuperuser: true})
	engine := NewEngine(fake)

	_, err := engine.UserAccessControl(context.Background(), id, "/gateway/unknown")
	if !errors.Is(err, store.ErrEndpointNotFound) {
		t.Fatalf("err = %v, want ErrEndpointNotFound", err)
	}
}

func TestUserAccessControl_UnknownEndpoint(t *testing.T) {
	fake, userID := policyFixture()
	engine := NewEngine(fake)

	_, err := engine.UserAccessControl(context.Background(), userID, "/gateway/no/such/path")
	if !errors.Is(err, store.ErrEndpointNotFound) {
		t.Fatalf("err = %v, want ErrEndpointNotFound", err)
	}
}

func TestUserAccessControl_NoUserSystemsDenies(t *testing.T) {
	fake, userID := policyFixture()
	engine := NewEngine(fake)

	ok, err := engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ok {
		t.Fatal("user without any system entitlement must be denied")
	}
}

func TestUserAccessControl_SystemMismatchDenies(t *testing.T) {
	fake, userID := policyFixture()
	fake.UserSystemsByID[userID] = []string{"OTHER"}
	engine := NewEngine(fake)

	ok, err := engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want deny", ok, err)
	}
}

func TestUserAccessControl_OpenEndpointAllowsOnSystemMatch(t *testing.T) {
	fake, userID := policyFixture()
	fake.UserSystemsByID[userID] = []string{"SYS"}
	engine := NewEngine(fake)

	// No roles and no groups on the endpoint: system entitlement suffices.
	ok, err := engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want allow", ok, err)
	}
}

func TestUserAccessControl_RoleIntersection(t *testing.T) {
	fake, userID := policyFixture()
	fake.UserSystemsByID[userID] = []string{"SYS"}
	fake.EndpointRolesByURL["/reports/export"] = []string{"auditor"}
	engine := NewEngine(fake)

	ok, err := engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want deny without matching role", ok, err)
	}

	fake.UserRolesByID[userID] = []string{"auditor"}
	ok, err = engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want allow via direct role", ok, err)
	}
}

func TestUserAccessControl_GroupRoleReachesEndpointGroup(t *testing.T) {
	fake, userID := policyFixture()
	fake.UserSystemsByID[userID] = []string{"SYS"}
	// Endpoint policy expressed only through groups.
	fake.EndpointGroupsByURL["/reports/export"] = []string{"analyst"}
	// User reaches the role through a group as well.
	fake.UserGroupRolesByID[userID] = []string{"analyst"}
	engine := NewEngine(fake)

	ok, err := engine.UserAccessControl(context.Background(), userID, "/gateway/reports/export")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want allow via group roles", ok, err)
	}
}

func TestStripGateway(t *testing.T) {
	cases := map[string]string{
		"/gateway/reports/export": "/reports/export",
		"/reports/export":         "/reports/export",
		"/gateway":                "",
	}
	for in, want := range cases {
		if got := StripGateway(in); got != want {
			t.Errorf("StripGateway(%q) = %q, want %q", in, got, want)
		}
	}
}
