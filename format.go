package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"pantry-optimizer/match"
)

// Report is the JSON-serializable result of one CLI run.
type Report struct {
	Held        []int                  `json:"held"`
	Focused     []int                  `json:"focused"`
	Recipes     []match.RecipeView     `json:"recipes"`
	Ingredients []match.IngredientView `json:"ingredients"`
	Detail      *match.RecipeDetail    `json:"detail,omitempty"`
}

// truncate applies a row limit; 0 means no limit.
func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatRecipes renders ranked recipes as a table.
func FormatRecipes(rows []match.RecipeView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-32s %-16s %s\n", "Recipe", "Status", "Category")
	fmt.Fprintf(&b, "%-32s %-16s %s\n", strings.Repeat("-", 32), strings.Repeat("-", 16), "--------")
	for _, r := range rows {
		name := r.Recipe.Name
		if r.Focused {
			name = "* " + name
		}
		fmt.Fprintf(&b, "%-32s %-16s %s\n", name, r.Status, r.Recipe.Category)
	}
	return b.String()
}

// FormatIngredients renders ranked ingredients as a table. Held ingredients
// are marked [x] and show no score.
func FormatIngredients(rows []match.IngredientView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s %-32s %9s %10s %8s\n", "", "Ingredient", "Completes", "Progresses", "Score")
	fmt.Fprintf(&b, "%-3s %-32s %9s %10s %8s\n", "---", strings.Repeat("-", 32), "---------", "----------", "--------")
	for _, r := range rows {
		if r.Selected {
			fmt.Fprintf(&b, "%-3s %-32s %9s %10s %8s\n", "[x]", r.Ingredient.Name, "", "", "")
			continue
		}
		fmt.Fprintf(&b, "%-3s %-32s %9d %10d %8d\n", "[ ]",
			r.Ingredient.Name, r.Impact.Completes, r.Impact.Progresses, r.Impact.Score())
	}
	return b.String()
}

// FormatDetail renders one recipe with its resolved ingredient lines.
func FormatDetail(d match.RecipeDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", d.Recipe.Name, d.Status)
	if d.Recipe.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", d.Recipe.Category)
	}
	if d.Recipe.Description != "" {
		fmt.Fprintf(&b, "%s\n", d.Recipe.Description)
	}
	b.WriteString("Ingredients:\n")
	for _, l := range d.Lines {
		mark := "[ ]"
		if l.Held {
			mark = "[x]"
		}
		name := l.Name
		if l.Dangling {
			name = "unknown ingredient #" + strconv.Itoa(l.IngredientID)
		}
		qty := strconv.FormatFloat(l.Amount, 'f', -1, 64)
		if l.Unit != "" {
			qty += " " + l.Unit
		}
		fmt.Fprintf(&b, "  %s %s %s", mark, qty, name)
		if l.Note != "" && l.Note != "NA" {
			fmt.Fprintf(&b, " (%s)", l.Note)
		}
		b.WriteString("\n")
	}
	if d.Recipe.Method != "" {
		fmt.Fprintf(&b, "Method:\n%s\n", d.Recipe.Method)
	}
	return b.String()
}
