package match

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether query occurs in name, ignoring case.
// An empty query matches everything.
func Matches(name, query string) bool {
	if query == "" {
		return true
	}
	// cases.Caser is stateful, so each call folds with its own.
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(query))
}

// FilterIngredients keeps ingredients whose name matches query, in input order.
func FilterIngredients(in []Ingredient, query string) []Ingredient {
	out := make([]Ingredient, 0, len(in))
	for _, ing := range in {
		if Matches(ing.Name, query) {
			out = append(out, ing)
		}
	}
	return out
}

// FilterRecipes keeps recipes whose name matches query, in input order.
func FilterRecipes(in []Recipe, query string) []Recipe {
	out := make([]Recipe, 0, len(in))
	for _, r := range in {
		if Matches(r.Name, query) {
			out = append(out, r)
		}
	}
	return out
}

// FilterCategory keeps recipes whose category equals category, ignoring case.
// An empty category keeps everything.
func FilterCategory(in []Recipe, category string) []Recipe {
	if category == "" {
		return append([]Recipe(nil), in...)
	}
	fold := cases.Fold()
	want := fold.String(category)
	out := make([]Recipe, 0, len(in))
	for _, r := range in {
		if fold.String(r.Category) == want {
			out = append(out, r)
		}
	}
	return out
}
