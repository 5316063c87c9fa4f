// Package static provides the in-process implementation of the
// storage.Storage interface. All profile data lives as literals in this
// file — there is no disk, no network, and nothing to connect to.
//
// WHY EAGER CONSTRUCTION?
// ───────────────────────
// The personal-info record carries a last_updated timestamp that must be
// identical for every request within one process run. Rather than caching
// it lazily behind the first request (and inheriting a first-caller race,
// however benign), we build the record ONCE inside New(), before the HTTP
// listener ever starts. After New() returns, the record is immutable and
// concurrent reads need no lock.
package static

import (
	"fmt"
	"time"

	"github.com/Aarekaz/api/internal/types"
	"github.com/go-playground/validator/v10"
)

// Static is the concrete implementation of storage.Storage.
// The zero value is not usable — always construct it with New().
type Static struct {
	// personal is written exactly once, in New(), and only read after.
	personal types.PersonalInfo
}

// New builds the personal-info record, stamps its last_updated field
// with the current time, validates it, and returns a ready-to-use
// *Static.
//
// Naming convention: New() acts as a constructor. Go has no constructors,
// so the community convention is a package-level New() function that
// returns an initialised instance (and an error as the second value).
func New() (*Static, error) {
	personal := types.PersonalInfo{
		Name:          "Your Name",
		Bio:           "Your Bio",
		CurrentStatus: "Available",
		LastUpdated:   time.Now(),
	}

	// validator.New().Struct(v) checks all validate:"..." tags on v.
	// The literals above can only fail validation if someone edits them
	// into an invalid state — in which case we want the process to refuse
	// to start rather than serve a half-empty record.
	if err := validator.New().Struct(personal); err != nil {
		return nil, fmt.Errorf("static.New: invalid personal info: %w", err)
	}

	return &Static{personal: personal}, nil
}

// GetPersonalInfo returns the record built in New().
// Every call returns the same value — including last_updated — for the
// lifetime of the process.
func (s *Static) GetPersonalInfo() types.PersonalInfo {
	return s.personal
}

// GetStudyInfo builds and returns a fresh study record on every call.
//
// The achievements map is allocated per call on purpose: the returned
// value is handed to the JSON encoder and must not be shared between
// requests, or a future mutation in one handler would leak into another.
func (s *Static) GetStudyInfo() types.StudyInfo {
	return types.StudyInfo{
		Institution: "Your University",
		Course:      "Your Course",
		Year:        2024,
		Achievements: map[string]string{
			"2024": "Dean's List",
			"2023": "Best Project Award",
		},
	}
}
