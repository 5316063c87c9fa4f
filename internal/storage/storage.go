// Package storage defines the Storage interface — a contract that any
// profile-data backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care where the profile data
// comes from. Today it is hardcoded in-process; by depending only on
// this interface:
//
//   - Switching backends (a config file, a CMS, a database) = implement
//     the interface for the new source, change one line in main.go.
//     Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real data source needed for unit tests.
//
// This is the Dependency Inversion Principle in practice.
package storage

import "github.com/Aarekaz/api/internal/types"

// Storage is the profile-data contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// GetPersonalInfo returns the process-wide personal-info record.
	// Implementations must return the SAME record on every call: the
	// last_updated timestamp identifies one construction, so callers may
	// rely on it never changing within a process run.
	GetPersonalInfo() types.PersonalInfo

	// GetStudyInfo returns the study record. Built fresh on every call;
	// callers own the returned value (including the achievements map)
	// and may not assume it is shared.
	GetStudyInfo() types.StudyInfo
}
