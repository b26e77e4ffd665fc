package cli

import (
	"os"

	"github.com/tasteline/tweakex/internal/diag"
	"github.com/tasteline/tweakex/internal/extract"
	"github.com/tasteline/tweakex/internal/llm"
	"github.com/tasteline/tweakex/internal/model"
)

// buildEngine wires the backend client, diagnostics sink, and extraction
// engine from the effective configuration.
func buildEngine(cfg model.Config) (*extract.Engine, error) {
	client, err := llm.NewOpenAIClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, err
	}

	sink := diag.NewZerologSink(os.Stderr, cfg.Output.Pretty)

	return extract.NewEngine(client, extract.Config{
		MaxRetries:  cfg.LLM.MaxRetries,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, sink), nil
}
