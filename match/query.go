package match

import "strings"

// RecipeView is one row of the ranked recipe list.
type RecipeView struct {
	Recipe  Recipe `json:"recipe"`
	Status  Status `json:"status"`
	Focused bool   `json:"focused"`
}

// IngredientView is one row of the ranked ingredient list. Impact is zero for
// held ingredients.
type IngredientView struct {
	Ingredient Ingredient `json:"ingredient"`
	Selected   bool       `json:"selected"`
	Impact     Impact     `json:"impact"`
}

// RankedRecipes filters recipes by query and ranks them against sel.
func RankedRecipes(c *Catalog, sel Selection, query string) []RecipeView {
	return rankedRecipeViews(c, FilterRecipes(c.Recipes(), query), sel)
}

// RankedRecipesInCategory is RankedRecipes restricted to one category.
func RankedRecipesInCategory(c *Catalog, sel Selection, query, category string) []RecipeView {
	return rankedRecipeViews(c, FilterRecipes(FilterCategory(c.Recipes(), category), query), sel)
}

func rankedRecipeViews(c *Catalog, recipes []Recipe, sel Selection) []RecipeView {
	ranked := RankRecipes(c, recipes, sel)
	out := make([]RecipeView, len(ranked))
	for i := range ranked {
		out[i] = RecipeView{
			Recipe:  ranked[i],
			Status:  c.Status(&ranked[i], sel),
			Focused: sel.Focuses(ranked[i].ID),
		}
	}
	return out
}

// RankedIngredients narrows ingredients to the focused recipes in sel (all of
// them when nothing is focused), filters by query and ranks the result.
func RankedIngredients(c *Catalog, sel Selection, query string) []IngredientView {
	candidates := FilterIngredients(c.FocusCandidates(sel), query)
	ranked := RankIngredients(c, candidates, sel)
	out := make([]IngredientView, len(ranked))
	for i, ing := range ranked {
		v := IngredientView{Ingredient: ing, Selected: sel.Holds(ing.ID)}
		if !v.Selected {
			v.Impact = c.Impact(ing.ID, sel)
		}
		out[i] = v
	}
	return out
}

// DetailLine is one required ingredient of a recipe, resolved for display.
type DetailLine struct {
	IngredientID int     `json:"ingredientId"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit,omitempty"`
	Note         string  `json:"note,omitempty"`
	Held         bool    `json:"held"`
	Dangling     bool    `json:"dangling,omitempty"`
}

// RecipeDetail is a recipe with its links resolved against the catalog.
type RecipeDetail struct {
	Recipe Recipe       `json:"recipe"`
	Status Status       `json:"status"`
	Lines  []DetailLine `json:"lines"`
}

// Detail resolves every link of r. Dangling links keep an empty name and are
// never held.
func (c *Catalog) Detail(r *Recipe, sel Selection) RecipeDetail {
	d := RecipeDetail{Recipe: *r, Status: c.Status(r, sel)}
	d.Lines = make([]DetailLine, 0, len(r.Links))
	for _, l := range r.Links {
		line := DetailLine{
			IngredientID: l.IngredientID,
			Amount:       l.Amount,
			Unit:         l.Unit,
			Note:         l.Note,
		}
		ing, ok := c.Ingredient(l.IngredientID)
		if ok {
			line.Name = ing.Name
			line.Held = sel.Holds(ing.ID)
			if line.Unit == "" {
				line.Unit = ing.Unit
			}
		} else {
			line.Dangling = true
		}
		d.Lines = append(d.Lines, line)
	}
	return d
}

// Slug turns a recipe name into its URL form: lower case, spaces as hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// RecipeBySlug returns the first recipe whose Slug equals slug.
func (c *Catalog) RecipeBySlug(slug string) (Recipe, bool) {
	for _, r := range c.recipes {
		if Slug(r.Name) == slug {
			return r.clone(), true
		}
	}
	return Recipe{}, false
}
