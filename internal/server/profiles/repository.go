package profiles

import (
	"context"
)

// Repository is the persistence contract for profile records.
//
// Get reports a missing record as common.ErrorNotFound; any other failure is
// a backend error with its own message. Save is a full create-or-replace by
// UserID with no merge semantics. Which concrete error a backend returns is
// decided inside the adapter, never by inspecting driver codes in callers.
type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, profile *Profile) (*Profile, error)
}
