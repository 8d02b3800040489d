package match

import (
	"cmp"
	"slices"
)

// RankRecipes returns recipes ordered complete first, then by fewest missing
// ingredients, then by name. Recipes with identical names keep input order.
func RankRecipes(c *Catalog, recipes []Recipe, sel Selection) []Recipe {
	type ranked struct {
		r      Recipe
		status Status
	}
	rs := make([]ranked, len(recipes))
	for i := range recipes {
		rs[i] = ranked{r: recipes[i], status: c.Status(&recipes[i], sel)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		if n := a.status.Compare(b.status); n != 0 {
			return n
		}
		return cmp.Compare(a.r.Name, b.r.Name)
	})
	out := make([]Recipe, len(rs))
	for i := range rs {
		out[i] = rs[i].r
	}
	return out
}

// RankIngredients returns ingredients with held ones first (by name), then
// the rest by descending impact, then by name.
func RankIngredients(c *Catalog, ingredients []Ingredient, sel Selection) []Ingredient {
	type ranked struct {
		ing    Ingredient
		held   bool
		impact Impact
	}
	rs := make([]ranked, len(ingredients))
	for i, ing := range ingredients {
		rs[i] = ranked{ing: ing, held: sel.Holds(ing.ID)}
		if !rs[i].held {
			rs[i].impact = c.Impact(ing.ID, sel)
		}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		if a.held != b.held {
			if a.held {
				return -1
			}
			return 1
		}
		if !a.held {
			if n := b.impact.Compare(a.impact); n != 0 {
				return n
			}
		}
		return cmp.Compare(a.ing.Name, b.ing.Name)
	})
	out := make([]Ingredient, len(rs))
	for i := range rs {
		out[i] = rs[i].ing
	}
	return out
}
