// Package profiles holds the profile record, its validation rules, the
// repository contract and the service-level operations built on top of it.
package profiles

import "fmt"

// Profile is a single experience-points record keyed by an external user id.
//
// UserID is the primary key and is never edited in place. ExperiencePoints
// is a pointer so a missing value in the inbound payload is distinguishable
// from an explicit zero; a record with a nil value never reaches a
// repository.
type Profile struct {
	UserID           string
	ExperiencePoints *float64
}

// Plain is the external wire representation of a profile, excluding any
// store-internal metadata.
type Plain struct {
	UserID           string  `json:"userId"`
	ExperiencePoints float64 `json:"experiencePoints"`
}

// Plain returns the wire representation of a validated profile.
func (p *Profile) Plain() Plain {
	plain := Plain{UserID: p.UserID}
	if p.ExperiencePoints != nil {
		plain.ExperiencePoints = *p.ExperiencePoints
	}
	return plain
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors for one record.
type ValidationError struct {
	Fields []FieldError `json:"details"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

// Validate checks the record against the data-model rules. It returns nil
// when the record may be persisted.
func (p *Profile) Validate() *ValidationError {
	var fields []FieldError

	if p.UserID == "" {
		fields = append(fields, FieldError{Field: "userId", Message: "is required"})
	}
	if p.ExperiencePoints == nil {
		fields = append(fields, FieldError{Field: "experiencePoints", Message: "is required and must be a number"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
