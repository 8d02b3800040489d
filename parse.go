package main

import (
	"errors"
	"fmt"
	"strings"

	"pantry-optimizer/match"
)

var (
	// ErrIngredientNotFound is returned when a toggle names no catalog ingredient.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrRecipeNotFound is returned when a focus toggle or lookup names no recipe.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Session pairs a loaded catalog with the current selection. Apply replaces
// Selection with a new value; the catalog never changes.
type Session struct {
	Catalog   *match.Catalog
	Selection match.Selection
}

// NewSession starts a session with nothing selected.
func NewSession(cat *match.Catalog) *Session {
	return &Session{Catalog: cat}
}

// Apply runs toggle commands in order:
//
//	name     toggle the ingredient
//	@recipe  toggle focus on the recipe (by name or slug)
//
// Names match exactly first, then case-insensitively. Apply stops at the first
// unknown name and leaves the selection as it was before the call.
func (s *Session) Apply(cmds ...string) error {
	sel := s.Selection
	for _, cmd := range cmds {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		if name, ok := strings.CutPrefix(cmd, "@"); ok {
			r, err := FindRecipe(s.Catalog, name)
			if err != nil {
				return err
			}
			sel = sel.ToggleFocusedRecipe(r.ID)
			continue
		}
		ing, err := FindIngredient(s.Catalog, cmd)
		if err != nil {
			return err
		}
		sel = sel.ToggleIngredient(ing.ID)
	}
	s.Selection = sel
	return nil
}

// FindIngredient looks an ingredient up by name.
func FindIngredient(cat *match.Catalog, name string) (match.Ingredient, error) {
	if ing, ok := cat.IngredientByName(name); ok {
		return ing, nil
	}
	for _, ing := range cat.Ingredients() {
		if strings.EqualFold(ing.Name, name) {
			return ing, nil
		}
	}
	return match.Ingredient{}, fmt.Errorf("%w: %q", ErrIngredientNotFound, name)
}

// FindRecipe looks a recipe up by name, then by slug, then case-insensitively.
func FindRecipe(cat *match.Catalog, name string) (match.Recipe, error) {
	if r, ok := cat.RecipeByName(name); ok {
		return r, nil
	}
	if r, ok := cat.RecipeBySlug(name); ok {
		return r, nil
	}
	for _, r := range cat.Recipes() {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return match.Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
}
