// Package extract owns the extraction retry loop: build the prompt, call
// the backend, decode, normalize, validate, retry on recoverable failures.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tasteline/tweakex/internal/diag"
	"github.com/tasteline/tweakex/internal/llm"
	"github.com/tasteline/tweakex/internal/model"
	"github.com/tasteline/tweakex/internal/prompt"
)

// Config holds the engine's retry and sampling parameters
type Config struct {
	// MaxRetries is the number of additional attempts after the first
	MaxRetries int

	// Temperature for sampling (kept low to favor determinism)
	Temperature float32

	// MaxTokens limits the response length
	MaxTokens int
}

// DefaultConfig returns the standard engine parameters
func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		Temperature: 0.1,
		MaxTokens:   2000,
	}
}

// Engine extracts structured modifications from review text. It holds only
// immutable configuration and is safe to reuse across sequential calls.
type Engine struct {
	client llm.Completer
	config Config
	sink   diag.Sink
}

// NewEngine creates an extraction engine. A nil sink discards diagnostics.
func NewEngine(client llm.Completer, config Config, sink diag.Sink) *Engine {
	if sink == nil {
		sink = diag.NopSink{}
	}
	if config.Temperature == 0 {
		config.Temperature = 0.1
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 2000
	}
	return &Engine{client: client, config: config, sink: sink}
}

// ExtractModifications extracts all structured modifications from a review.
//
// A review without the modification flag short-circuits to an empty result
// without touching the backend. Otherwise up to MaxRetries+1 sequential
// attempts are made; empty responses, malformed JSON and schema violations
// each consume an attempt, while any other fault aborts the loop early.
// The caller always observes a populated or empty list, never an error;
// failure detail goes to the diagnostics sink only.
func (e *Engine) ExtractModifications(ctx context.Context, review model.Review, recipe model.Recipe) []model.Modification {
	if !review.HasModification {
		return nil
	}

	p := prompt.BuildFewShot(review.Text, recipe.Title, recipe.Ingredients, recipe.Instructions)

	attempts := e.config.MaxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		mods, fail := e.attempt(ctx, attempt, p)
		if fail == nil {
			e.sink.Extracted(mods)
			return mods
		}
		if fail.Kind == KindUnexpected {
			return nil
		}
	}

	e.sink.RetriesExhausted(attempts)
	return nil
}

// attempt performs one backend round-trip and classifies the outcome.
// Diagnostics are emitted here so the loop only has to dispatch on the kind.
func (e *Engine) attempt(ctx context.Context, attempt int, p string) ([]model.Modification, *attemptFailure) {
	raw, err := e.client.Complete(ctx, p, e.config.Temperature, e.config.MaxTokens)
	if err != nil {
		e.sink.UnexpectedFailure(attempt, err)
		return nil, &attemptFailure{Kind: KindUnexpected, Err: err}
	}

	if raw == "" {
		e.sink.EmptyResponse(attempt)
		return nil, &attemptFailure{Kind: KindEmptyResponse}
	}

	e.sink.RawOutput(attempt, raw)

	var envelope struct {
		Modifications json.RawMessage `json:"modifications"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		e.sink.DecodeFailure(attempt, raw, err)
		return nil, &attemptFailure{Kind: KindDecodeFailure, Err: err}
	}

	// A well-formed response without the modifications field is outside
	// the recoverable taxonomy and aborts the loop.
	if len(envelope.Modifications) == 0 || bytes.Equal(envelope.Modifications, []byte("null")) {
		err := errors.New("response has no modifications field")
		e.sink.UnexpectedFailure(attempt, err)
		return nil, &attemptFailure{Kind: KindUnexpected, Err: err}
	}

	// The field holds either a single object or a list of objects.
	// Normalize to a list before any typed validation.
	elements, err := normalize(envelope.Modifications)
	if err != nil {
		e.sink.DecodeFailure(attempt, raw, err)
		return nil, &attemptFailure{Kind: KindDecodeFailure, Err: err}
	}

	mods := make([]model.Modification, 0, len(elements))
	for _, element := range elements {
		mod, err := model.ParseModification(element)
		if err != nil {
			// One invalid element discards the whole batch.
			e.sink.ValidationFailure(attempt, string(envelope.Modifications), err)
			return nil, &attemptFailure{Kind: KindValidationFailure, Err: err}
		}
		mods = append(mods, mod)
	}

	return mods, nil
}

// normalize wraps a single JSON object into a one-element list.
func normalize(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("modifications list: %w", err)
		}
		return list, nil
	}
	return []json.RawMessage{trimmed}, nil
}

// SelectAndExtract deterministically picks one review from the collection
// and extracts its modifications.
//
// Selection maximizes (rating-or-zero, text length), highest rating first,
// ties broken by longer text, first winner kept. Every supplied review is
// eligible regardless of its modification flag. An empty collection is a
// precondition violation and yields (nil, nil) after a diagnostic. When
// extraction comes back empty the result is also (nil, nil).
func (e *Engine) SelectAndExtract(ctx context.Context, reviews []model.Review, recipe model.Recipe) ([]model.Modification, *model.Review) {
	if len(reviews) == 0 {
		e.sink.UnexpectedFailure(0, errors.New("no reviews to select from"))
		return nil, nil
	}

	selected := reviews[0]
	for _, r := range reviews[1:] {
		if r.RatingOrZero() > selected.RatingOrZero() ||
			(r.RatingOrZero() == selected.RatingOrZero() && len(r.Text) > len(selected.Text)) {
			selected = r
		}
	}

	e.sink.ReviewSelected(selected)

	mods := e.ExtractModifications(ctx, selected, recipe)
	if len(mods) == 0 {
		return nil, nil
	}
	return mods, &selected
}

// TestExtraction runs extraction on raw text and a raw recipe dictionary.
// Convenience entry point for ad hoc testing; the review is assumed to
// claim a modification.
func (e *Engine) TestExtraction(ctx context.Context, reviewText string, recipeData map[string]any) []model.Modification {
	review := model.Review{Text: reviewText, HasModification: true}
	recipe := model.RecipeFromMap(recipeData)
	return e.ExtractModifications(ctx, review, recipe)
}
