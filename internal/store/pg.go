package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// PG is the pgx-backed Store implementation. The deep relational graph of
// the policy model (users <-> roles <-> groups <-> endpoints <->
// micro_services <-> systems) is expressed as explicit joins returning
// flat rows; no object graph is materialized.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG wraps a connection pool in a Store.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

func (p *PG) UserByEmail(ctx context.Context, email string) (*User, error) {
	u := User{}
	err := p.pool.QueryRow(ctx, `
		SELECT id, email, password, is_active, is_superuser
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.IsSuperuser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	if u.Roles, err = p.stringColumn(ctx, `
		SELECT r.role_name FROM roles r
		JOIN users_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.role_name
	`, u.ID); err != nil {
		return nil, err
	}

	if u.Groups, err = p.stringColumn(ctx, `
		SELECT g.group_name FROM groups g
		JOIN users_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY g.group_name
	`, u.ID); err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, `
		SELECT s.name_system, s.system_code FROM systems s
		JOIN users_systems us ON us.system_id = s.id
		WHERE us.user_id = $1
		ORDER BY s.system_code
	`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("select user systems: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ref SystemRef
		if err := rows.Scan(&ref.NameSystem, &ref.SystemCode); err != nil {
			return nil, err
		}
		u.Systems = append(u.Systems, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &u, nil
}

func (p *PG) UserIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	return id, err
}

func (p *PG) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (p *PG) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO users (email, password, is_active, is_superuser)
		VALUES ($1, $2, TRUE, FALSE)
		RETURNING id
	`, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (p *PG) IsActiveSuperuser(ctx context.Context, userID int64) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE id = $1 AND is_active = TRUE AND is_superuser = TRUE
		)
	`, userID).Scan(&ok)
	return ok, err
}

func (p *PG) IsSuperuserEmail(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND is_superuser = TRUE
		)
	`, email).Scan(&ok)
	return ok, err
}

func (p *PG) EndpointByURL(ctx context.Context, path string) (*Endpoint, error) {
	e := Endpoint{}
	err := p.pool.QueryRow(ctx, `
		SELECT id, COALESCE(endpoint_name, ''), endpoint_url, endpoint_request,
		       endpoint_status, endpoint_authenticated, endpoint_microservice_id
		FROM endpoints WHERE endpoint_url = $1
	`, path).Scan(&e.ID, &e.Name, &e.URL, &e.Method, &e.Status, &e.Authenticated, &e.MicroserviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEndpointNotFound
		}
		return nil, fmt.Errorf("select endpoint: %w", err)
	}
	return &e, nil
}

func (p *PG) UnauthenticatedEndpoint(ctx context.Context, path string) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM endpoints
			WHERE endpoint_url = $1 AND endpoint_authenticated = FALSE
		)
	`, path).Scan(&ok)
	return ok, err
}

// MicroserviceBaseURL resolves the microservice row owning the endpoint.
// Exactly one row must match; more than one is a configuration error
// surfaced as ErrMultipleMicroservices.
func (p *PG) MicroserviceBaseURL(ctx context.Context, path string) (string, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT m.microservice_base_url
		FROM micro_services m
		JOIN endpoints e ON e.endpoint_microservice_id = m.id
		WHERE e.endpoint_url = $1
	`, path)
	if err != nil {
		return "", fmt.Errorf("select microservice: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return "", err
		}
		urls = append(urls, u)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(urls) {
	case 0:
		return "", ErrNoMicroservice
	case 1:
		return urls[0], nil
	default:
		return "", ErrMultipleMicroservices
	}
}

func (p *PG) SystemEndpoints(ctx context.Context, systemCode string) ([]EndpointManifest, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT COALESCE(e.endpoint_name, ''), e.endpoint_url, s.system_code,
		       COALESCE(array_agg(DISTINCT r.role_name) FILTER (WHERE r.role_name IS NOT NULL), '{}'),
		       COALESCE(array_agg(DISTINCT g.group_name) FILTER (WHERE g.group_name IS NOT NULL), '{}')
		FROM endpoints e
		JOIN micro_services m ON e.endpoint_microservice_id = m.id
		JOIN systems s ON m.microservice_system_id = s.id
		LEFT JOIN endpoints_roles er ON er.endpoint_id = e.id
		LEFT JOIN roles r ON r.id = er.role_id
		LEFT JOIN endpoints_groups eg ON eg.endpoint_id = e.id
		LEFT JOIN groups g ON g.id = eg.group_id
		WHERE s.system_code = $1
		GROUP BY e.id, e.endpoint_name, e.endpoint_url, s.system_code
		ORDER BY e.endpoint_url
	`, systemCode)
	if err != nil {
		return nil, fmt.Errorf("select system endpoints: %w", err)
	}
	defer rows.Close()

	manifest := []EndpointManifest{}
	for rows.Next() {
		var m EndpointManifest
		if err := rows.Scan(&m.Name, &m.URL, &m.SystemCode, &m.Roles, &m.Groups); err != nil {
			return nil, err
		}
		manifest = append(manifest, m)
	}
	return manifest, rows.Err()
}

func (p *PG) UserSystems(ctx context.Context, userID int64) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT s.system_code FROM systems s
		JOIN users_systems us ON us.system_id = s.id
		WHERE us.user_id = $1
	`, userID)
}

func (p *PG) MicroserviceSystems(ctx context.Context, path string) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT s.system_code FROM systems s
		JOIN micro_services m ON m.microservice_system_id = s.id
		JOIN endpoints e ON e.endpoint_microservice_id = m.id
		WHERE e.endpoint_url = $1
	`, path)
}

func (p *PG) UserRoles(ctx context.Context, userID int64) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT r.role_name FROM roles r
		JOIN users_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
	`, userID)
}

// UserGroupRoles returns role names reached through the user's groups.
func (p *PG) UserGroupRoles(ctx context.Context, userID int64) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT r.role_name FROM roles r
		JOIN groups_roles gr ON gr.role_id = r.id
		JOIN users_groups ug ON ug.group_id = gr.group_id
		WHERE ug.user_id = $1
	`, userID)
}

func (p *PG) EndpointRoles(ctx context.Context, path string) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT r.role_name FROM roles r
		JOIN endpoints_roles er ON er.role_id = r.id
		JOIN endpoints e ON e.id = er.endpoint_id
		WHERE e.endpoint_url = $1
	`, path)
}

// EndpointGroupRoles returns role names of groups attached to the endpoint.
func (p *PG) EndpointGroupRoles(ctx context.Context, path string) (map[string]struct{}, error) {
	return p.stringSet(ctx, `
		SELECT r.role_name FROM roles r
		JOIN groups_roles gr ON gr.role_id = r.id
		JOIN endpoints_groups eg ON eg.group_id = gr.group_id
		JOIN endpoints e ON e.id = eg.endpoint_id
		WHERE e.endpoint_url = $1
	`, path)
}

func (p *PG) RecordMovement(ctx context.Context, m Movement) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO historical_movements
			(user_id, url_request, type_request, system, user_ip, user_browser, query, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.UserID, m.URL, m.Method, m.System, m.ClientIP, m.UserAgent, m.Query, m.Details)
	if err != nil {
		return fmt.Errorf("insert historical movement: %w", err)
	}
	return nil
}

func (p *PG) stringColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *PG) stringSet(ctx context.Context, query string, args ...any) (map[string]struct{}, error) {
	col, err := p.stringColumn(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(col))
	for _, s := range col {
		set[s] = struct{}{}
	}
	return set, nil
}
