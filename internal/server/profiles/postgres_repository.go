package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query :=
		`SELECT user_id, experience_points FROM profiles
		 WHERE user_id = $1
		 `

	profile := &Profile{}
	var points float64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&profile.UserID, &points)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	profile.ExperiencePoints = &points
	return profile, nil
}

func (r *PostgresRepository) Save(ctx context.Context, profile *Profile) (*Profile, error) {

	// Full replace by primary key, no merge.
	query :=
		`INSERT INTO profiles (user_id, experience_points)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET experience_points = EXCLUDED.experience_points
		 RETURNING user_id, experience_points
		 `

	saved := &Profile{}
	var points float64
	err := r.db.QueryRowContext(ctx, query, profile.UserID, *profile.ExperiencePoints).
		Scan(&saved.UserID, &points)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	saved.ExperiencePoints = &points
	return saved, nil
}
