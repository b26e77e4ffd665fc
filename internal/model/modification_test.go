package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func validModification() Modification {
	return Modification{
		ModificationType: ModificationSubstitution,
		Reasoning:        "we're cutting back on refined sugar",
		Edits: []Edit{
			{Target: TargetIngredient, Operation: OpReplace, Original: "3/4 cup white sugar", Replacement: "honey"},
			{Target: TargetInstruction, Operation: OpAdd, Replacement: "Reduce oven temperature by 25F for honey."},
		},
	}
}

func TestModification_Validate(t *testing.T) {
	if err := validModification().Validate(); err != nil {
		t.Errorf("Expected valid modification, got %v", err)
	}
}

func TestModification_ValidateMissingType(t *testing.T) {
	m := validModification()
	m.ModificationType = ""

	err := m.Validate()
	if err == nil {
		t.Fatal("Expected validation error for missing modification_type")
	}
	var sv *SchemaViolation
	if !asSchemaViolation(err, &sv) || sv.Field != "modification_type" {
		t.Errorf("Expected schema violation on modification_type, got %v", err)
	}
}

func TestModification_ValidateEmptyEdits(t *testing.T) {
	m := validModification()
	m.Edits = nil

	if err := m.Validate(); err == nil {
		t.Error("Expected validation error for empty edits")
	}
}

func TestModification_ValidateEditFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  Edit
		field string
	}{
		{"missing target", Edit{Operation: OpReplace, Original: "x", Replacement: "y"}, "target"},
		{"missing operation", Edit{Target: TargetIngredient, Original: "x", Replacement: "y"}, "operation"},
		{"replace without original", Edit{Target: TargetIngredient, Operation: OpReplace, Replacement: "y"}, "original"},
		{"remove without original", Edit{Target: TargetIngredient, Operation: OpRemove}, "original"},
		{"add without replacement", Edit{Target: TargetIngredient, Operation: OpAdd}, "replacement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModification()
			m.Edits = []Edit{tt.edit}

			err := m.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to name field %q, got %v", tt.field, err)
			}
		})
	}
}

func TestModification_ValidateAddWithoutOriginal(t *testing.T) {
	m := validModification()
	m.Edits = []Edit{{Target: TargetIngredient, Operation: OpAdd, Replacement: "walnuts"}}

	if err := m.Validate(); err != nil {
		t.Errorf("Add without original should be valid, got %v", err)
	}
}

func TestParseModification_RoundTrip(t *testing.T) {
	original := validModification()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	parsed, err := ParseModification(data)
	if err != nil {
		t.Fatalf("Expected round-trip to succeed, got %v", err)
	}
	if !reflect.DeepEqual(original, parsed) {
		t.Errorf("Round-trip changed fields:\n  before: %+v\n  after:  %+v", original, parsed)
	}
}

func TestParseModification_MistypedField(t *testing.T) {
	// edits as a string instead of a list must be rejected, not coerced.
	raw := []byte(`{"modification_type": "addition", "reasoning": "x", "edits": "not a list"}`)

	if _, err := ParseModification(raw); err == nil {
		t.Error("Expected rejection of mistyped edits field")
	}
}

func TestParseModification_MissingFields(t *testing.T) {
	raw := []byte(`{"reasoning": "only reasoning"}`)

	if _, err := ParseModification(raw); err == nil {
		t.Error("Expected rejection when required fields are absent")
	}
}

func TestNewReview(t *testing.T) {
	r, err := NewReview("added cinnamon", true, nil)
	if err != nil {
		t.Fatalf("Expected valid review, got %v", err)
	}
	if !r.HasModification || r.Text != "added cinnamon" {
		t.Errorf("Unexpected review: %+v", r)
	}
	if r.RatingOrZero() != 0 {
		t.Errorf("Expected absent rating to read as 0, got %v", r.RatingOrZero())
	}

	if _, err := NewReview("", true, nil); err == nil {
		t.Error("Expected empty text to be rejected")
	}
}

func TestRecipeFromMap(t *testing.T) {
	recipe := RecipeFromMap(map[string]any{
		"recipe_id":   "r-42",
		"title":       "Laksa",
		"ingredients": []any{"noodles", "coconut milk"},
	})

	if recipe.RecipeID != "r-42" || recipe.Title != "Laksa" {
		t.Errorf("Unexpected recipe: %+v", recipe)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %v", recipe.Ingredients)
	}
	if recipe.Instructions != nil {
		t.Errorf("Expected no instructions, got %v", recipe.Instructions)
	}

	fallback := RecipeFromMap(map[string]any{})
	if fallback.RecipeID != "test" || fallback.Title != "Test Recipe" {
		t.Errorf("Expected placeholder fields, got %+v", fallback)
	}
}

func asSchemaViolation(err error, target **SchemaViolation) bool {
	sv, ok := err.(*SchemaViolation)
	if ok {
		*target = sv
	}
	return ok
}
