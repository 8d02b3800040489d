// Package match ranks recipes by how close they are to completion and
// ingredients by how much holding them would unlock.
//
// Everything in this package is pure: a Catalog is never modified after
// NewCatalog returns and a Selection is a value that toggles into new values.
// Rankings are recomputed from scratch on every call.
package match

// Ingredient is a catalog ingredient. Name is unique and case-sensitive.
type Ingredient struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Link joins a recipe to one ingredient it requires.
type Link struct {
	ID           int     `json:"id" yaml:"id"`
	RecipeID     int     `json:"recipeId" yaml:"recipeId"`
	IngredientID int     `json:"ingredientId" yaml:"ingredientId"`
	Amount       float64 `json:"amount" yaml:"amount"`
	Unit         string  `json:"unit,omitempty" yaml:"unit,omitempty"` // overrides Ingredient.Unit
	Note         string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// Recipe is a catalog recipe. Link order carries no meaning.
type Recipe struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Method      string `json:"method,omitempty" yaml:"method,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Links       []Link `json:"ingredients" yaml:"ingredients"`
}

// Required returns the distinct ingredient ids the recipe links to, in link
// order. Duplicate links to one ingredient collapse into a single entry.
func (r *Recipe) Required() []int {
	if len(r.Links) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(r.Links))
	ids := make([]int, 0, len(r.Links))
	for _, l := range r.Links {
		if seen[l.IngredientID] {
			continue
		}
		seen[l.IngredientID] = true
		ids = append(ids, l.IngredientID)
	}
	return ids
}

// Catalog is an immutable snapshot of ingredients and recipes.
type Catalog struct {
	ingredients []Ingredient
	recipes     []Recipe

	ingredientByID map[int]int // id -> index into ingredients
	recipeByID     map[int]int // id -> index into recipes
}

// NewCatalog copies the given slices into a new Catalog. Later ids win when
// ids repeat; both entries stay visible in Ingredients/Recipes.
func NewCatalog(ingredients []Ingredient, recipes []Recipe) *Catalog {
	c := &Catalog{
		ingredients:    make([]Ingredient, len(ingredients)),
		recipes:        make([]Recipe, len(recipes)),
		ingredientByID: make(map[int]int, len(ingredients)),
		recipeByID:     make(map[int]int, len(recipes)),
	}
	copy(c.ingredients, ingredients)
	for i := range c.ingredients {
		c.ingredientByID[c.ingredients[i].ID] = i
	}
	for i, r := range recipes {
		r.Links = append([]Link(nil), r.Links...)
		c.recipes[i] = r
		c.recipeByID[r.ID] = i
	}
	return c
}

// Ingredients returns a copy of all ingredients in catalog order.
func (c *Catalog) Ingredients() []Ingredient {
	return append([]Ingredient(nil), c.ingredients...)
}

// Recipes returns a copy of all recipes in catalog order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i := range c.recipes {
		out[i] = c.recipes[i].clone()
	}
	return out
}

func (r Recipe) clone() Recipe {
	r.Links = append([]Link(nil), r.Links...)
	return r
}

// Ingredient looks up an ingredient by id.
func (c *Catalog) Ingredient(id int) (Ingredient, bool) {
	i, ok := c.ingredientByID[id]
	if !ok {
		return Ingredient{}, false
	}
	return c.ingredients[i], true
}

// Recipe looks up a recipe by id.
func (c *Catalog) Recipe(id int) (Recipe, bool) {
	i, ok := c.recipeByID[id]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i].clone(), true
}

// HasIngredient reports whether id names a catalog ingredient.
func (c *Catalog) HasIngredient(id int) bool {
	_, ok := c.ingredientByID[id]
	return ok
}

// IngredientByName returns the first ingredient with exactly this name.
func (c *Catalog) IngredientByName(name string) (Ingredient, bool) {
	for _, ing := range c.ingredients {
		if ing.Name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// RecipeByName returns the first recipe with exactly this name.
func (c *Catalog) RecipeByName(name string) (Recipe, bool) {
	for _, r := range c.recipes {
		if r.Name == name {
			return r.clone(), true
		}
	}
	return Recipe{}, false
}

// DanglingLinks returns every link that points at an ingredient id missing
// from the catalog. Such links keep their recipe permanently incomplete.
func (c *Catalog) DanglingLinks() []Link {
	var out []Link
	for _, r := range c.recipes {
		for _, l := range r.Links {
			if !c.HasIngredient(l.IngredientID) {
				out = append(out, l)
			}
		}
	}
	return out
}
