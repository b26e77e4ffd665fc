package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasteline/tweakex/internal/model"
)

var (
	extractRecipe  string
	extractModel   string
	extractRetries int
	extractTimeout time.Duration
	extractPretty  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <review text>",
	Short: "Extract modifications from a single review (ad hoc)",
	Long: `Extract runs a one-off extraction on raw review text against a recipe
JSON file. The review is assumed to claim a modification.

Example:
  tweakex extract "I swapped the butter for olive oil" --recipe banana-bread.json
  tweakex extract "Added a pinch of nutmeg" --recipe recipe.json --model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractRecipe, "recipe", "", "recipe JSON file (required)")
	extractCmd.Flags().StringVar(&extractModel, "model", "gpt-4o-mini", "model name")
	extractCmd.Flags().IntVar(&extractRetries, "retries", 2, "additional attempts after the first")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "human-readable diagnostics instead of JSON lines")
	_ = extractCmd.MarkFlagRequired("recipe")
}

func runExtract(cmd *cobra.Command, args []string) error {
	reviewText := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	data, err := os.ReadFile(extractRecipe)
	if err != nil {
		return fmt.Errorf("read recipe: %w", err)
	}
	var recipeData map[string]any
	if err := json.Unmarshal(data, &recipeData); err != nil {
		return fmt.Errorf("parse recipe: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.LLM.Model = extractModel
	cfg.LLM.MaxRetries = extractRetries
	cfg.Output.Verbose = verbose
	cfg.Output.Pretty = extractPretty

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	mods := engine.TestExtraction(ctx, reviewText, recipeData)
	if len(mods) == 0 {
		fmt.Fprintln(os.Stderr, "No modifications extracted.")
		return nil
	}

	out, err := json.MarshalIndent(mods, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
