// Package dataset loads the review and recipe inputs the CLI harness feeds
// to the extraction engine.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tasteline/tweakex/internal/model"
)

// Store resolves recipes by ID from a directory of <recipe_id>.json files.
// Parsed recipes are held in an in-memory TTL cache so datasets with many
// reviews of the same recipe parse each file once.
type Store struct {
	dir   string
	cache *gocache.Cache
}

// NewStore creates a recipe store over the given directory.
func NewStore(dir string, ttl, cleanupInterval time.Duration) *Store {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	if cleanupInterval == 0 {
		cleanupInterval = 15 * time.Minute
	}
	return &Store{
		dir:   dir,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Recipe returns the recipe with the given ID, reading and parsing its
// file on the first lookup.
func (s *Store) Recipe(recipeID string) (model.Recipe, error) {
	if recipeID == "" {
		return model.Recipe{}, fmt.Errorf("recipe id is empty")
	}

	if cached, found := s.cache.Get(recipeID); found {
		return cached.(model.Recipe), nil
	}

	path := filepath.Join(s.dir, recipeID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("read recipe %s: %w", recipeID, err)
	}

	var recipe model.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return model.Recipe{}, fmt.Errorf("parse recipe %s: %w", recipeID, err)
	}
	if recipe.RecipeID == "" {
		recipe.RecipeID = recipeID
	}

	s.cache.SetDefault(recipeID, recipe)
	return recipe, nil
}
