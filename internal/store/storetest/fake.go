// Package storetest provides an in-memory Store for handler and engine
// tests that exercise the admission pipeline without postgres.
package storetest

import (
	"context"
	"sync"

	"github.com/sisgate/gateway-api/internal/store"
)

// Fake implements store.Store over plain maps. Populate the exported
// fields, then hand it to the code under test. Methods are safe for
// concurrent use.
type Fake struct {
	mu sync.Mutex

	Users               map[string]*store.User // keyed by email
	Endpoints           map[string]*store.Endpoint
	BaseURLs            map[string][]string // per endpoint path; len decides the scalar-one outcome
	Manifests           map[string][]store.EndpointManifest
	UserRolesByID       map[int64][]string
	UserGroupRolesByID  map[int64][]string
	UserSystemsByID     map[int64][]string
	EndpointRolesByURL  map[string][]string
	EndpointGroupsByURL map[string][]string
	SystemsByURL        map[string][]string
	Movements           []store.Movement

	nextID int64
}

// New returns an empty Fake ready for population.
func New() *Fake {
	return &Fake{
		Users:               map[string]*store.User{},
		Endpoints:           map[string]*store.Endpoint{},
		BaseURLs:            map[string][]string{},
		Manifests:           map[string][]store.EndpointManifest{},
		UserRolesByID:       map[int64][]string{},
		UserGroupRolesByID:  map[int64][]string{},
		UserSystemsByID:     map[int64][]string{},
		EndpointRolesByURL:  map[string][]string{},
		EndpointGroupsByURL: map[string][]string{},
		SystemsByURL:        map[string][]string{},
	}
}

// AddUser registers a user and returns its assigned id.
func (f *Fake) AddUser(u store.User) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u.ID = f.nextID
	f.Users[u.Email] = &u
	return u.ID
}

func (f *Fake) userByID(id int64) *store.User {
	for _, u := range f.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *Fake) UserByEmail(_ context.Context, email string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *Fake) UserIDByEmail(_ context.Context, email string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[email]
	if !ok {
		return 0, store.ErrUserNotFound
	}
	return u.ID, nil
}

func (f *Fake) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.Users[email]
	return ok, nil
}

func (f *Fake) CreateUser(_ context.Context, email, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Users[email]; ok {
		return 0, store.ErrDuplicateEmail
	}
	f.nextID++
	f.Users[email] = &store.User{
		ID:       f.nextID,
		Email:    email,
		Password: passwordHash,
		IsActive: true,
	}
	return f.nextID, nil
}

func (f *Fake) IsActiveSuperuser(_ context.Context, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.userByID(userID)
	return u != nil && u.IsActive && u.IsSuperuser, nil
}

func (f *Fake) IsSuperuserEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[email]
	return ok && u.IsSuperuser, nil
}

func (f *Fake) EndpointByURL(_ context.Context, path string) (*store.Endpoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.Endpoints[path]
	if !ok {
		return nil, store.ErrEndpointNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *Fake) UnauthenticatedEndpoint(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.Endpoints[path]
	return ok && !e.Authenticated, nil
}

func (f *Fake) MicroserviceBaseURL(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	urls := f.BaseURLs[path]
	switch len(urls) {
	case 0:
		return "", store.ErrNoMicroservice
	case 1:
		return urls[0], nil
	default:
		return "", store.ErrMultipleMicroservices
	}
}

func (f *Fake) SystemEndpoints(_ context.Context, systemCode string) ([]store.EndpointManifest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := f.Manifests[systemCode]
	if m == nil {
		m = []store.EndpointManifest{}
	}
	return m, nil
}

func (f *Fake) UserSystems(_ context.Context, userID int64) (map[string]struct{}, error) {
	return f.set(f.UserSystemsByID[userID]), nil
}

func (f *Fake) MicroserviceSystems(_ context.Context, path string) (map[string]struct{}, error) {
	return f.set(f.SystemsByURL[path]), nil
}

func (f *Fake) UserRoles(_ context.Context, userID int64) (map[string]struct{}, error) {
	return f.set(f.UserRolesByID[userID]), nil
}

func (f *Fake) UserGroupRoles(_ context.Context, userID int64) (map[string]struct{}, error) {
	return f.set(f.UserGroupRolesByID[userID]), nil
}

func (f *Fake) EndpointRoles(_ context.Context, path string) (map[string]struct{}, error) {
	return f.set(f.EndpointRolesByURL[path]), nil
}

func (f *Fake) EndpointGroupRoles(_ context.Context, path string) (map[string]struct{}, error) {
	return f.set(f.EndpointGroupsByURL[path]), nil
}

func (f *Fake) RecordMovement(_ context.Context, m store.Movement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Movements = append(f.Movements, m)
	return nil
}

func (f *Fake) set(vals []string) map[string]struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		out[v] = struct{}{}
	}
	return out
}
