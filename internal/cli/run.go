package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/tasteline/tweakex/internal/dataset"
	"github.com/tasteline/tweakex/internal/model"
)

var (
	runRecipeDir string
	runOut       string
	runModel     string
	runRetries   int
	runTimeout   time.Duration
	runRPS       float64
	runPretty    bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <reviews.json>",
	Short: "Extract modifications for every recipe in a review dataset",
	Long: `Run processes a review dataset recipe by recipe, sequentially:
- Group reviews by recipe_id
- For each recipe, select the review with the highest (rating, text length)
- Extract its modifications through the bounded retry loop
- Write one result entry per recipe that yielded modifications

Recipes are resolved from a directory of <recipe_id>.json files. The
optional --rps flag paces the per-recipe loop; it never changes how many
attempts the extraction engine itself makes.

Example:
  tweakex run reviews.json --recipes ./recipes --out results.json
  tweakex run reviews.json --recipes ./recipes --rps 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runRecipeDir, "recipes", "./recipes", "directory of <recipe_id>.json files")
	runCmd.Flags().StringVar(&runOut, "out", "results.json", "output JSON path")
	runCmd.Flags().StringVar(&runModel, "model", "gpt-4o-mini", "model name")
	runCmd.Flags().IntVar(&runRetries, "retries", 2, "additional attempts after the first")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Minute, "total timeout for the dataset")
	runCmd.Flags().Float64Var(&runRPS, "rps", 0, "max recipes started per second (0 = unpaced)")
	runCmd.Flags().BoolVar(&runPretty, "pretty", false, "human-readable diagnostics instead of JSON lines")
}

// RecipeResult is one output entry of a dataset run.
type RecipeResult struct {
	RecipeID      string               `json:"recipe_id"`
	ReviewText    string               `json:"review_text"`
	ReviewRating  *float64             `json:"review_rating,omitempty"`
	Modifications []model.Modification `json:"modifications"`
}

func runRun(cmd *cobra.Command, args []string) error {
	reviewsPath := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.LLM.Model = runModel
	cfg.LLM.MaxRetries = runRetries
	cfg.Dataset.RecipeDir = runRecipeDir
	cfg.Output.Verbose = verbose
	cfg.Output.Pretty = runPretty

	grouped, err := dataset.LoadReviews(reviewsPath)
	if err != nil {
		return err
	}

	store := dataset.NewStore(cfg.Dataset.RecipeDir, cfg.Dataset.CacheTTL, cfg.Dataset.CacheCleanup)

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	// Deterministic processing order
	recipeIDs := make([]string, 0, len(grouped))
	for id := range grouped {
		recipeIDs = append(recipeIDs, id)
	}
	sort.Strings(recipeIDs)

	if verbose {
		fmt.Fprintf(os.Stderr, "Reviews file: %s\n", reviewsPath)
		fmt.Fprintf(os.Stderr, "Recipes:      %d\n", len(recipeIDs))
		fmt.Fprintf(os.Stderr, "Recipe dir:   %s\n", cfg.Dataset.RecipeDir)
		fmt.Fprintln(os.Stderr)
	}

	// Pacing lives here in the harness loop, never inside the engine.
	var limiter *rate.Limiter
	if runRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(runRPS), 1)
	}

	var results []RecipeResult
	for _, recipeID := range recipeIDs {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return fmt.Errorf("pacing: %w", err)
			}
		}

		recipe, err := store.Recipe(recipeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", recipeID, err)
			continue
		}

		mods, selected := engine.SelectAndExtract(ctx, grouped[recipeID], recipe)
		if selected == nil {
			continue
		}

		results = append(results, RecipeResult{
			RecipeID:      recipeID,
			ReviewText:    selected.Text,
			ReviewRating:  selected.Rating,
			Modifications: mods,
		})
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(runOut, out, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Extracted modifications for %d/%d recipes\n", len(results), len(recipeIDs))
	fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", runOut)

	return nil
}
