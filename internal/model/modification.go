package model

import (
	"encoding/json"
	"fmt"
)

// ModificationType categorizes the nature of a recipe change
type ModificationType string

const (
	ModificationSubstitution    ModificationType = "substitution"     // One ingredient swapped for another
	ModificationAddition        ModificationType = "addition"         // New ingredient or step introduced
	ModificationOmission        ModificationType = "omission"         // Ingredient or step dropped
	ModificationQuantityChange  ModificationType = "quantity_change"  // Amount adjusted
	ModificationTechniqueChange ModificationType = "technique_change" // Cooking method altered
)

// EditTarget identifies what part of the recipe an edit applies to
type EditTarget string

const (
	TargetIngredient  EditTarget = "ingredient"
	TargetInstruction EditTarget = "instruction"
)

// EditOperation identifies how the target is changed
type EditOperation string

const (
	OpReplace EditOperation = "replace"
	OpAdd     EditOperation = "add"
	OpRemove  EditOperation = "remove"
)

// Edit is a single atomic change applied to an ingredient or instruction,
// with enough fields to describe before/after state.
type Edit struct {
	Target      EditTarget    `json:"target"`
	Operation   EditOperation `json:"operation"`
	Original    string        `json:"original,omitempty"`    // Required unless operation is "add"
	Replacement string        `json:"replacement,omitempty"` // Required unless operation is "remove"
}

// Modification is one structured recipe change claimed by a reviewer.
// Instances are constructed only by decoding a JSON object and passing
// Validate; a modification that fails validation is rejected outright,
// never coerced.
type Modification struct {
	ModificationType ModificationType `json:"modification_type"`
	Reasoning        string           `json:"reasoning"`
	Edits            []Edit           `json:"edits"`
}

// SchemaViolation reports a required field that is absent or mistyped.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: field %q %s", e.Field, e.Reason)
}

// Validate checks required fields. It returns a *SchemaViolation describing
// the first problem found, or nil if the modification is well-formed.
func (m Modification) Validate() error {
	if m.ModificationType == "" {
		return &SchemaViolation{Field: "modification_type", Reason: "is required"}
	}
	if len(m.Edits) == 0 {
		return &SchemaViolation{Field: "edits", Reason: "must be a non-empty list"}
	}
	for i, edit := range m.Edits {
		if edit.Target == "" {
			return &SchemaViolation{Field: fmt.Sprintf("edits[%d].target", i), Reason: "is required"}
		}
		if edit.Operation == "" {
			return &SchemaViolation{Field: fmt.Sprintf("edits[%d].operation", i), Reason: "is required"}
		}
		if edit.Operation != OpAdd && edit.Original == "" {
			return &SchemaViolation{Field: fmt.Sprintf("edits[%d].original", i), Reason: "is required unless operation is \"add\""}
		}
		if edit.Operation != OpRemove && edit.Replacement == "" {
			return &SchemaViolation{Field: fmt.Sprintf("edits[%d].replacement", i), Reason: "is required unless operation is \"remove\""}
		}
	}
	return nil
}

// ParseModification decodes a single JSON object into a validated
// Modification. Mistyped fields fail the typed unmarshal; missing required
// fields fail Validate. Either way the object is rejected whole.
func ParseModification(raw json.RawMessage) (Modification, error) {
	var m Modification
	if err := json.Unmarshal(raw, &m); err != nil {
		return Modification{}, &SchemaViolation{Field: "modification", Reason: err.Error()}
	}
	if err := m.Validate(); err != nil {
		return Modification{}, err
	}
	return m, nil
}
