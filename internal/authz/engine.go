// Package authz decides whether a principal may invoke a path, combining
// the user/role/group/system relations from the relational store.
package authz

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/store"
)

// Paths that bypass policy resolution entirely.
var allowlist = map[string]struct{}{
	"/administration/users/get_current_user": {},
	"/authentication/renew/token":            {},
	"/authentication/keys/public_key":        {},
}

// Engine evaluates access control. All lookups are read-only, so it is safe
// to evaluate concurrently for distinct requests.
type Engine struct {
	store store.Store
}

// NewEngine builds an Engine on the given store.
func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// StripGateway removes the /gateway prefix under which proxied endpoints
// are exposed; endpoint rows are stored without it.
func StripGateway(path string) string {
	return strings.TrimPrefix(path, "/gateway")
}

// UserAccessControl reports whether the user may invoke path.
//
// Decision order: allowlist, active superuser, endpoint existence
// (store.ErrEndpointNotFound when the path is unknown), system entitlement
// intersection, then role-set intersection. An endpoint carrying no roles
// and no groups is open to any user entitled to its system.
func (e *Engine) UserAccessControl(ctx context.Context, userID int64, path string) (bool, error) {
	if _, ok := allowlist[path]; ok {
		return true, nil
	}

	super, err := e.store.IsActiveSuperuser(ctx, userID)
	if err != nil {
		return false, err
	}
	if super {
		return true, nil
	}

	endpointPath := StripGateway(path)
	if _, err := e.store.EndpointByURL(ctx, endpointPath); err != nil {
		return false, err
	}

	userSystems, err := e.store.UserSystems(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(userSystems) == 0 {
		return false, nil
	}

	microserviceSystems, err := e.store.MicroserviceSystems(ctx, endpointPath)
	if err != nil {
		return false, err
	}
	if !intersects(userSystems, microserviceSystems) {
		log.Ctx(ctx).Debug().
			Int64("user_id", userID).
			Str("path", endpointPath).
			Msg("no system entitlement for endpoint")
		return false, nil
	}

	endpointRoles, err := e.store.EndpointRoles(ctx, endpointPath)
	if err != nil {
		return false, err
	}
	endpointGroups, err := e.store.EndpointGroupRoles(ctx, endpointPath)
	if err != nil {
		return false, err
	}
	if len(endpointRoles) == 0 && len(endpointGroups) == 0 {
		return true, nil
	}

	userRoles, err := e.store.UserRoles(ctx, userID)
	if err != nil {
		return false, err
	}
	userGroups, err := e.store.UserGroupRoles(ctx, userID)
	if err != nil {
		return false, err
	}

	return intersects(union(userRoles, userGroups), union(endpointRoles, endpointGroups)), nil
}

func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
