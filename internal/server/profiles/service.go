package profiles

import (
	"context"
)

// Service implements the profile operations on top of a Repository.
//
// Validation is checked before any persistence attempt; an invalid record is
// never written. Repository errors pass through unwrapped so callers can
// match common.ErrorNotFound and surface backend messages.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates or fully replaces the record for userID. Issuing the same
// upsert twice yields the same stored state.
func (s *Service) Upsert(ctx context.Context, userID string, experiencePoints *float64) (*Profile, error) {

	profile := &Profile{UserID: userID, ExperiencePoints: experiencePoints}

	if verr := profile.Validate(); verr != nil {
		return nil, verr
	}

	return s.repo.Save(ctx, profile)
}

// Get looks up the record for userID. A missing record is reported as
// common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.Get(ctx, userID)
}
