package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/cubtton/storefront/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

// profileRepository backs the admin user manager. Profile rows are created
// by the auth backend at signup; this repository only reads and maintains
// them.
type profileRepository struct {
	pool *pgxpool.Pool
}

func NewProfile(pool *pgxpool.Pool) (port.ProfileRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &profileRepository{pool: pool}, nil
}

const profileColumns = `id, email, full_name, username, avatar_url, role, created_at`

func (r *profileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProfile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("row.Scan: %w", err)
	}

	return count, nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (domain.Profile, error) {
	if role != domain.RoleClient && role != domain.RoleAdmin {
		return domain.Profile{}, fmt.Errorf("role[%s] is not valid", role)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE profiles SET role = $2 WHERE id = $1 RETURNING `+profileColumns,
		id, role)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, fmt.Errorf("profile[%s]: %w", id, ErrProfileNotFound)
		}
		return domain.Profile{}, fmt.Errorf("scanProfile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.Profile) (domain.Profile, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE profiles
		 SET full_name = $2, username = $3, avatar_url = $4
		 WHERE id = $1
		 RETURNING `+profileColumns,
		id, p.FullName, p.Username, p.AvatarURL)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, fmt.Errorf("profile[%s]: %w", id, ErrProfileNotFound)
		}
		return domain.Profile{}, fmt.Errorf("scanProfile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile[%s]: %w", id, ErrProfileNotFound)
	}

	return nil
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Username, &p.AvatarURL, &p.Role, &p.CreatedAt); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
