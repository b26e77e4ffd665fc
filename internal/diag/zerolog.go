package diag

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/tasteline/tweakex/internal/model"
)

// ZerologSink writes diagnostics as structured log events.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink builds a sink writing JSON lines to w. With pretty set,
// events are rendered for a terminal instead.
func NewZerologSink(w io.Writer, pretty bool) *ZerologSink {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &ZerologSink{log: logger}
}

func (s *ZerologSink) RawOutput(attempt int, raw string) {
	s.log.Debug().Int("attempt", attempt).Str("raw", raw).Msg("backend output")
}

func (s *ZerologSink) EmptyResponse(attempt int) {
	s.log.Warn().Int("attempt", attempt).Msg("empty response from backend")
}

func (s *ZerologSink) DecodeFailure(attempt int, raw string, err error) {
	s.log.Warn().Int("attempt", attempt).Err(err).Str("raw", raw).Msg("failed to decode response as JSON")
}

func (s *ZerologSink) ValidationFailure(attempt int, data string, err error) {
	s.log.Warn().Int("attempt", attempt).Err(err).Str("data", data).Msg("modification failed schema validation")
}

func (s *ZerologSink) UnexpectedFailure(attempt int, err error) {
	s.log.Error().Int("attempt", attempt).Err(err).Msg("unexpected extraction failure")
}

func (s *ZerologSink) RetriesExhausted(attempts int) {
	s.log.Error().Int("attempts", attempts).Msg("all extraction attempts failed")
}

func (s *ZerologSink) ReviewSelected(review model.Review) {
	s.log.Info().
		Float64("rating", review.RatingOrZero()).
		Int("text_len", len(review.Text)).
		Str("text", truncate(review.Text, 100)).
		Msg("selected review")
}

func (s *ZerologSink) Extracted(mods []model.Modification) {
	edits := 0
	for _, m := range mods {
		edits += len(m.Edits)
	}
	s.log.Info().Int("modifications", len(mods)).Int("edits", edits).Msg("extraction succeeded")

	for i, m := range mods {
		s.log.Info().
			Int("index", i+1).
			Str("type", string(m.ModificationType)).
			Str("reasoning", m.Reasoning).
			Msg("modification")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
