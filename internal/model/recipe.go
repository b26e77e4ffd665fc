package model

// Recipe represents the original recipe a review refers to.
// Immutable; supplied by the caller.
type Recipe struct {
	RecipeID     string   `json:"recipe_id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// RecipeFromMap builds a Recipe from a raw dictionary, filling in
// placeholder values for missing fields. Used by the ad hoc test entry point.
func RecipeFromMap(data map[string]any) Recipe {
	return Recipe{
		RecipeID:     stringField(data, "recipe_id", "test"),
		Title:        stringField(data, "title", "Test Recipe"),
		Ingredients:  stringsField(data, "ingredients"),
		Instructions: stringsField(data, "instructions"),
	}
}

func stringField(data map[string]any, key, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func stringsField(data map[string]any, key string) []string {
	var out []string
	switch v := data[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
