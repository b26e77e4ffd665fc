package model

// Review represents a single user review of a recipe.
// Immutable once constructed; supplied by the caller from upstream review data.
type Review struct {
	Text            string   `json:"text"`                // Review body
	HasModification bool     `json:"has_modification"`    // Reviewer claims a recipe change
	Rating          *float64 `json:"rating,omitempty"`    // Optional numeric score
	RecipeID        string   `json:"recipe_id,omitempty"` // Recipe the review refers to (dataset use)
}

// NewReview constructs a Review, rejecting empty text.
func NewReview(text string, hasModification bool, rating *float64) (Review, error) {
	if text == "" {
		return Review{}, &SchemaViolation{Field: "text", Reason: "must be non-empty"}
	}
	return Review{Text: text, HasModification: hasModification, Rating: rating}, nil
}

// RatingOrZero returns the rating, treating an absent rating as zero.
func (r Review) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
