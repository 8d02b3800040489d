package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleRoundTrip(t *testing.T) {
	start := NewSelection(flour, milk).ToggleFocusedRecipe(2)

	for _, id := range []int{flour, egg, 99} {
		back := start.ToggleIngredient(id).ToggleIngredient(id)
		assert.True(t, back.Equal(start), "toggle %d twice", id)
	}
	back := start.ToggleFocusedRecipe(1).ToggleFocusedRecipe(1)
	assert.True(t, back.Equal(start))
}

func TestSelection_ToggleDoesNotMutate(t *testing.T) {
	s := NewSelection(flour)
	added := s.ToggleIngredient(egg)
	removed := s.ToggleIngredient(flour)

	assert.Equal(t, []int{flour}, s.Ingredients())
	assert.Equal(t, []int{flour, egg}, added.Ingredients())
	assert.Empty(t, removed.Ingredients())
	assert.True(t, removed.Equal(Selection{}))

	f := s.ToggleFocusedRecipe(7)
	assert.Empty(t, s.FocusedRecipes())
	assert.Equal(t, []int{7}, f.FocusedRecipes())
	assert.True(t, f.Focuses(7))
	assert.True(t, f.Holds(flour))
}

func TestSelection_WithFocus(t *testing.T) {
	s := NewSelection(flour).WithFocus(3, 1)
	assert.Equal(t, []int{1, 3}, s.FocusedRecipes())
	assert.Empty(t, s.WithFocus().FocusedRecipes())
	assert.True(t, s.Holds(flour))
}

func TestSelection_ZeroValue(t *testing.T) {
	var s Selection
	assert.False(t, s.Holds(flour))
	assert.Empty(t, s.Ingredients())
	assert.Empty(t, s.FocusedRecipes())
	assert.True(t, s.Equal(NewSelection()))
}

func TestFocusCandidates(t *testing.T) {
	c := NewCatalog(
		[]Ingredient{
			{ID: flour, Name: "Flour"},
			{ID: egg, Name: "Egg"},
			{ID: milk, Name: "Milk"},
			{ID: sugar, Name: "Sugar"},
		},
		[]Recipe{
			recipe(1, "A", flour, egg),
			recipe(2, "Custard", milk, egg, 77),
		},
	)

	assert.Len(t, c.FocusCandidates(NewSelection()), 4)

	one := NewSelection().ToggleFocusedRecipe(1)
	assert.Equal(t, []string{"Flour", "Egg"}, ingredientNames(c.FocusCandidates(one)))

	both := one.ToggleFocusedRecipe(2)
	assert.Equal(t, []string{"Flour", "Egg", "Milk"}, ingredientNames(c.FocusCandidates(both)))

	unknown := NewSelection().ToggleFocusedRecipe(404)
	assert.Empty(t, c.FocusCandidates(unknown))
}
