// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import "time"

// PersonalInfo is the record returned by GET /info.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (snake_case names match the API's wire format).
//     Without this tag Go uses the exported field name, e.g. "Name".
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-zero / non-empty.
//
// The record is built exactly once at process startup and shared by
// reference afterwards. Nothing in the codebase mutates it — there are
// no setters, and handlers only ever read it.
type PersonalInfo struct {
	Name          string `json:"name"           validate:"required"`
	Bio           string `json:"bio"            validate:"required"`
	CurrentStatus string `json:"current_status" validate:"required"`

	// LastUpdated is stamped when the record is constructed. Because
	// construction happens once per process, every response carries the
	// same value for the lifetime of the server.
	LastUpdated time.Time `json:"last_updated" validate:"required"`
}

// StudyInfo is the record returned by GET /study.
// Unlike PersonalInfo it is built fresh on every request.
type StudyInfo struct {
	Institution string `json:"institution" validate:"required"`
	Course      string `json:"course"      validate:"required"`
	Year        int    `json:"year"        validate:"required"`

	// Achievements maps a year label to an award label.
	// It is the only optional field in the API: a nil map encodes as
	// JSON null (no omitempty — the key is always present in the body).
	Achievements map[string]string `json:"achievements"`
}

// StatusReply is the record returned by GET /.
// Both fields are computed at request time.
type StatusReply struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusOnline is the only value Status ever takes — the endpoint exists
// so callers can confirm the process is up and serving.
const StatusOnline = "online"
