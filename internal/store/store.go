package store

import (
	"context"
	"errors"
)

// Sentinel errors surfaced by the persistence adapter. Handlers map these
// to HTTP statuses; nothing below the handler layer knows about HTTP.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrEndpointNotFound      = errors.New("endpoint not found")
	ErrNoMicroservice        = errors.New("no microservice available for endpoint")
	ErrMultipleMicroservices = errors.New("multiple microservices match endpoint")
)

// SystemRef is the (name, code) pair of a system a user is entitled to.
type SystemRef struct {
	NameSystem string `json:"name_system"`
	SystemCode string `json:"system_code"`
}

// User is a principal row with its policy attachments flattened.
type User struct {
	ID          int64
	Email       string
	Password    string // bcrypt hash, never serialized into claims
	IsActive    bool
	IsSuperuser bool
	Roles       []string
	Groups      []string
	Systems     []SystemRef
}

// Endpoint is a single (method, path) target on a microservice.
type Endpoint struct {
	ID             int64
	Name           string
	URL            string
	Method         string
	Status         bool
	Authenticated  bool
	MicroserviceID int64
}

// EndpointManifest is the per-endpoint entry embedded in login tokens.
type EndpointManifest struct {
	Name       string   `json:"endpoint_name"`
	URL        string   `json:"endpoint_url"`
	SystemCode string   `json:"system_code"`
	Roles      []string `json:"roles"`
	Groups     []string `json:"groups"`
}

// Movement is an audit row recorded for proxied traffic.
type Movement struct {
	UserID    *int64
	URL       string
	Method    string
	System    string
	ClientIP  string
	UserAgent string
	Query     string
	Details   string
}

// Store is the relational adapter consumed by the authorization engine and
// the HTTP handlers. All reads are side-effect free; the gateway mutates
// only users (register) and historical_movements (traffic audit).
type Store interface {
	// Principals
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserIDByEmail(ctx context.Context, email string) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)
	IsActiveSuperuser(ctx context.Context, userID int64) (bool, error)
	IsSuperuserEmail(ctx context.Context, email string) (bool, error)

	// Endpoints and routing
	EndpointByURL(ctx context.Context, path string) (*Endpoint, error)
	UnauthenticatedEndpoint(ctx context.Context, path string) (bool, error)
	MicroserviceBaseURL(ctx context.Context, path string) (string, error)
	SystemEndpoints(ctx context.Context, systemCode string) ([]EndpointManifest, error)

	// Policy set algebra over the bridge tables
	UserSystems(ctx context.Context, userID int64) (map[string]struct{}, error)
	MicroserviceSystems(ctx context.Context, path string) (map[string]struct{}, error)
	UserRoles(ctx context.Context, userID int64) (map[string]struct{}, error)
	UserGroupRoles(ctx context.Context, userID int64) (map[string]struct{}, error)
	EndpointRoles(ctx context.Context, path string) (map[string]struct{}, error)
	EndpointGroupRoles(ctx context.Context, path string) (map[string]struct{}, error)

	// Audit
	RecordMovement(ctx context.Context, m Movement) error
}
