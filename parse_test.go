package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-optimizer/match"
)

func sampleCatalog(t *testing.T) *match.Catalog {
	t.Helper()
	cat, err := catalogFromJSON(mustRead(t, "catalog.json"))
	require.NoError(t, err)
	return cat
}

func TestSession_Apply(t *testing.T) {
	s := NewSession(sampleCatalog(t))

	require.NoError(t, s.Apply("Flour", "egg", " ", "@banana-bread"))
	assert.Equal(t, []int{1, 2}, s.Selection.Ingredients())
	assert.Equal(t, []int{3}, s.Selection.FocusedRecipes())

	require.NoError(t, s.Apply("Egg", "@Banana Bread"))
	assert.Equal(t, []int{1}, s.Selection.Ingredients())
	assert.Empty(t, s.Selection.FocusedRecipes())
}

func TestSession_ApplyUnknownLeavesSelection(t *testing.T) {
	s := NewSession(sampleCatalog(t))
	require.NoError(t, s.Apply("Flour"))
	before := s.Selection

	err := s.Apply("Milk", "Saffron")
	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.True(t, s.Selection.Equal(before))

	err = s.Apply("@Souffle")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.True(t, s.Selection.Equal(before))
}

func TestFindRecipe(t *testing.T) {
	cat := sampleCatalog(t)

	for _, name := range []string{"Scrambled Eggs", "scrambled-eggs", "SCRAMBLED EGGS"} {
		r, err := FindRecipe(cat, name)
		require.NoError(t, err, name)
		assert.Equal(t, 2, r.ID)
	}
}

func TestFindIngredient(t *testing.T) {
	cat := sampleCatalog(t)

	ing, err := FindIngredient(cat, "baking powder")
	require.NoError(t, err)
	assert.Equal(t, 8, ing.ID)

	_, err = FindIngredient(cat, "Saffron")
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}
