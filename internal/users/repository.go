package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orgnest/backend/internal/models"
)

// ErrNotVisible means the target user does not exist or the viewer may not
// see them; the two cases are not distinguished.
var ErrNotVisible = errors.New("user not visible")

// Store is the lookup port for user visibility.
type Store interface {
	// GetVisible returns the target user iff the viewer is the target or
	// the two share an organisation (each as creator or member).
	GetVisible(ctx context.Context, targetID, viewerID uuid.UUID) (*models.UserPublic, error)
}

// Repository is the pgx-backed Store.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a users repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetVisible returns the target user with the visibility predicate applied
// in the query, so absent and forbidden collapse into one outcome.
func (r *Repository) GetVisible(ctx context.Context, targetID, viewerID uuid.UUID) (*models.UserPublic, error) {
	const q = `SELECT u.id, u.first_name, u.last_name, u.email, u.phone
		FROM users u
		WHERE u.id = $1 AND (
			$1 = $2
			OR EXISTS (
				SELECT 1 FROM organisations o
				WHERE (o.created_by = $2 OR EXISTS (
					SELECT 1 FROM organisation_members m
					WHERE m.organisation_id = o.id AND m.user_id = $2))
				AND (o.created_by = $1 OR EXISTS (
					SELECT 1 FROM organisation_members m
					WHERE m.organisation_id = o.id AND m.user_id = $1))
			)
		)`
	var u models.UserPublic
	err := r.pool.QueryRow(ctx, q, targetID, viewerID).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotVisible
		}
		return nil, err
	}
	return &u, nil
}
