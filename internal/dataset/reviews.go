package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tasteline/tweakex/internal/model"
	"github.com/tasteline/tweakex/internal/util"
)

// LoadReviews reads a JSON array of reviews and groups them by recipe ID.
// Review text scraped with markup is reduced to visible text on load.
// Reviews with empty text or no recipe ID are skipped.
func LoadReviews(path string) (map[string][]model.Review, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}

	var reviews []model.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("parse reviews: %w", err)
	}

	grouped := make(map[string][]model.Review)
	for _, r := range reviews {
		r.Text = util.VisibleText(r.Text)
		if r.Text == "" || r.RecipeID == "" {
			continue
		}
		grouped[r.RecipeID] = append(grouped[r.RecipeID], r)
	}

	return grouped, nil
}
