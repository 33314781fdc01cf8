// Package db wires concrete repository implementations behind a single
// manager so the application picks a storage backend at startup.
package db

import (
	"context"

	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Close() error
	Profiles() profiles.Repository
}
