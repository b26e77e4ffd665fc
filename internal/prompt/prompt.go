// Package prompt builds the few-shot extraction prompt sent to the
// inference backend. Building is pure: same inputs, same prompt.
package prompt

import (
	"fmt"
	"strings"
)

const instructionsSection = `You extract recipe modifications from user reviews. A modification is a change the reviewer claims to have made to the recipe: substituting an ingredient, adding or omitting something, changing a quantity, or changing a technique.

Respond with a JSON object of the form {"modifications": [...]}. Each modification has:
- "modification_type": one of "substitution", "addition", "omission", "quantity_change", "technique_change"
- "reasoning": why the reviewer made the change, in their words where possible
- "edits": a non-empty list of atomic changes, each with:
  - "target": "ingredient" or "instruction"
  - "operation": "replace", "add" or "remove"
  - "original": the original text being changed (omit for "add")
  - "replacement": the new text (omit for "remove")

Extract ALL modifications mentioned in the review. Return ONLY the JSON object, no markdown fences or other text.`

const workedExample = `Example:

Recipe: Classic Banana Bread
Ingredients:
- 2 cups all-purpose flour
- 3/4 cup white sugar
- 3 ripe bananas
Instructions:
1. Preheat oven to 350F.
2. Mix dry ingredients, fold in mashed bananas.

Review: "Delicious! I used honey instead of sugar because we're cutting back, and I threw in a handful of walnuts."

Output:
{"modifications": [{"modification_type": "substitution", "reasoning": "cutting back on refined sugar", "edits": [{"target": "ingredient", "operation": "replace", "original": "3/4 cup white sugar", "replacement": "honey"}]}, {"modification_type": "addition", "reasoning": "reviewer added nuts for texture", "edits": [{"target": "ingredient", "operation": "add", "replacement": "a handful of walnuts"}]}]}`

// BuildFewShot constructs the extraction prompt for one review/recipe pair.
// Empty ingredient or instruction slices produce empty sections; the
// function never fails.
func BuildFewShot(reviewText, recipeTitle string, ingredients, instructions []string) string {
	var b strings.Builder

	b.WriteString(instructionsSection)
	b.WriteString("\n\n")
	b.WriteString(workedExample)
	b.WriteString("\n\nNow extract the modifications from this review.\n\n")

	fmt.Fprintf(&b, "Recipe: %s\n", recipeTitle)

	b.WriteString("Ingredients:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString("Instructions:\n")
	for i, step := range instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	fmt.Fprintf(&b, "\nReview: %q\n\nOutput:", reviewText)

	return b.String()
}
