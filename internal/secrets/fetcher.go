// Package secrets fetches shared secrets from an external vault and caches
// them for the lifetime of the process.
package secrets

import "context"

// Fetcher retrieves the current value of a named secret from the vault.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
}
