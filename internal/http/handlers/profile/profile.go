// Package profile contains all HTTP handlers for the personal API.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a data source.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access `storage` even after the factory call has returned.
// This is called a closure. Example:
//
//	router.HandleFunc("GET /info", profile.GetInfo(storage))
//	//                                     ^^^^^^^^^^^^^^^^
//	//                   GetInfo(storage) is called ONCE at startup.
//	//                   It returns a handler func which is called
//	//                   on EVERY incoming request.
//
// All three handlers are read-only: they take no body, no query
// parameters, and no path parameters. The only ways a request can fail
// are the router's own 404 (unknown path) and 405 (wrong method).
package profile

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Aarekaz/api/internal/storage"
	"github.com/Aarekaz/api/internal/types"
	"github.com/Aarekaz/api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// Status handles GET /
// Reports that the API is up, with the current server time.
//
// Success response (200 OK):
//
//	{ "status": "online", "timestamp": "2024-06-01T12:00:00Z" }
//
// No inputs, no failure modes — the body is computed entirely from the
// clock.
// ─────────────────────────────────────────────────────────────────────────────
func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("serving api status")

		response.WriteJSON(w, http.StatusOK, types.StatusReply{
			Status:    types.StatusOnline,
			Timestamp: time.Now(),
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetInfo handles GET /info
// Returns the process-wide personal-info record.
//
// Success response (200 OK):
//
//	{ "name": "...", "bio": "...", "current_status": "...",
//	  "last_updated": "2024-06-01T12:00:00Z" }
//
// The record is constructed once at startup, so last_updated is the same
// for every request in a process run. The handler itself holds no state —
// it just reads through the storage interface.
// ─────────────────────────────────────────────────────────────────────────────
func GetInfo(storage storage.Storage) http.HandlerFunc {
	// This is the factory function. It runs ONCE when the route is
	// registered. It captures `storage` in the closure below.

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("serving personal info")

		response.WriteJSON(w, http.StatusOK, storage.GetPersonalInfo())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudy handles GET /study
// Returns the study record, built fresh for this request.
//
// Success response (200 OK):
//
//	{ "institution": "...", "course": "...", "year": 2024,
//	  "achievements": { "2024": "Dean's List", "2023": "Best Project Award" } }
//
// ─────────────────────────────────────────────────────────────────────────────
func GetStudy(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("serving study info")

		response.WriteJSON(w, http.StatusOK, storage.GetStudyInfo())
	}
}
