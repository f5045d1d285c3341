package organizations

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orgnest/backend/internal/models"
)

// ErrNotFound means no organisation matched the lookup.
var ErrNotFound = errors.New("organisation not found")

// Store is the persistence port for organisations and membership edges.
type Store interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	// HasAccess is the access-control predicate: true iff the user created
	// the organisation or holds a membership edge. False for organisations
	// that do not exist.
	HasAccess(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
	// ListVisible returns the organisations for which HasAccess holds.
	ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Organization, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error
}

// Repository is the pgx-backed Store.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an organizations repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts an organisation with org.CreatedBy as creator.
func (r *Repository) Create(ctx context.Context, org *models.Organization) error {
	const q = `INSERT INTO organisations (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, q, org.Name, org.Description, org.CreatedBy).
		Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
}

// GetByID returns an organisation by ID, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	const q = `SELECT id, name, description, created_by, created_at, updated_at
		FROM organisations WHERE id = $1`
	var org models.Organization
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&org.ID, &org.Name, &org.Description, &org.CreatedBy, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// HasAccess reports whether the user is the creator of the organisation or
// holds a membership edge.
func (r *Repository) HasAccess(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM organisations o
		WHERE o.id = $1 AND (
			o.created_by = $2
			OR EXISTS (
				SELECT 1 FROM organisation_members m
				WHERE m.organisation_id = o.id AND m.user_id = $2
			)
		)
	)`
	var ok bool
	if err := r.pool.QueryRow(ctx, q, orgID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ListVisible returns organisations the user created or is a member of.
func (r *Repository) ListVisible(ctx context.Context, userID uuid.UUID) ([]models.Organization, error) {
	const q = `SELECT o.id, o.name, o.description, o.created_by, o.created_at, o.updated_at
		FROM organisations o
		WHERE o.created_by = $1
		   OR EXISTS (
			SELECT 1 FROM organisation_members m
			WHERE m.organisation_id = o.id AND m.user_id = $1
		   )
		ORDER BY o.created_at`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Organization
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// AddMember records a membership edge. Adding an existing member is a no-op.
func (r *Repository) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	const q = `INSERT INTO organisation_members (organisation_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (organisation_id, user_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, q, orgID, userID)
	return err
}
