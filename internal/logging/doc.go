// Package logging provides the unified structured logging layer for the
// application, built on zerolog.
//
// Components depend on the Logger interface rather than on zerolog directly,
// which keeps them testable with in-memory writers and leaves the backend
// swappable. The Field helpers (String, Int, Uint64, Float64, Err) build
// typed key/value pairs that the adapter maps onto native zerolog fields.
package logging
