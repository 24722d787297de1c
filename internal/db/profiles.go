package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-scorer/internal/types"
)

// UpsertProfile creates or refreshes a profile keyed by email and returns the
// stored row.
func (db *DB) UpsertProfile(ctx context.Context, req *types.UpsertProfileRequest) (*types.Profile, error) {
	var profile types.Profile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (email, full_name, target_role, industry, career_level, target_country)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO UPDATE SET
		     full_name = EXCLUDED.full_name,
		     target_role = EXCLUDED.target_role,
		     industry = EXCLUDED.industry,
		     career_level = EXCLUDED.career_level,
		     target_country = EXCLUDED.target_country,
		     updated_at = NOW()
		 RETURNING id, email, full_name, target_role, industry, career_level, target_country, created_at, updated_at`,
		req.Email, req.FullName, req.TargetRole, req.Industry, req.CareerLevel, req.TargetCountry,
	).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.TargetRole,
		&profile.Industry, &profile.CareerLevel, &profile.TargetCountry,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByEmail retrieves a profile by email. Returns nil, nil when no
// profile exists.
func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*types.Profile, error) {
	var profile types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, full_name, target_role, industry, career_level, target_country, created_at, updated_at
		 FROM profiles WHERE email = $1`,
		email,
	).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.TargetRole,
		&profile.Industry, &profile.CareerLevel, &profile.TargetCountry,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByID retrieves a profile by id. Returns nil, nil when no profile
// exists.
func (db *DB) GetProfileByID(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var profile types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, full_name, target_role, industry, career_level, target_country, created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.TargetRole,
		&profile.Industry, &profile.CareerLevel, &profile.TargetCountry,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile removes a profile and all its CVs via cascade.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}
