package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/profilekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	profiles profiles.Repository
}

func (m *PostgresRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	repo, err := profiles.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("profile repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		profiles: repo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
