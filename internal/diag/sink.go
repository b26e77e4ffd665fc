// Package diag defines the diagnostics sink the extraction engine reports
// into. Diagnostics are observability only; nothing in the engine's control
// flow depends on what a sink does with an event.
package diag

import "github.com/tasteline/tweakex/internal/model"

// Sink receives one call per diagnostic event kind. Attempt numbers are
// 1-based.
type Sink interface {
	// RawOutput reports the raw backend response body for an attempt.
	RawOutput(attempt int, raw string)

	// EmptyResponse reports a backend response with no body.
	EmptyResponse(attempt int)

	// DecodeFailure reports a response body that is not valid JSON.
	DecodeFailure(attempt int, raw string, err error)

	// ValidationFailure reports decoded JSON that does not match the
	// modification schema.
	ValidationFailure(attempt int, data string, err error)

	// UnexpectedFailure reports any other fault (backend error, missing
	// modifications field, empty review set).
	UnexpectedFailure(attempt int, err error)

	// RetriesExhausted reports that every attempt failed.
	RetriesExhausted(attempts int)

	// ReviewSelected reports which review SelectAndExtract picked.
	ReviewSelected(review model.Review)

	// Extracted reports the validated modifications of a successful attempt.
	Extracted(mods []model.Modification)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RawOutput(int, string)                {}
func (NopSink) EmptyResponse(int)                    {}
func (NopSink) DecodeFailure(int, string, error)     {}
func (NopSink) ValidationFailure(int, string, error) {}
func (NopSink) UnexpectedFailure(int, error)         {}
func (NopSink) RetriesExhausted(int)                 {}
func (NopSink) ReviewSelected(model.Review)          {}
func (NopSink) Extracted([]model.Modification)       {}
