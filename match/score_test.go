package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpact_Counts(t *testing.T) {
	c := bakingCatalog(t)

	tests := []struct {
		name string
		id   int
		held []int
		want Impact
	}{
		{"egg with nothing held", egg, nil, Impact{Progresses: 2}},
		{"flour with egg held", flour, []int{egg}, Impact{Completes: 1, Progresses: 1}},
		{"milk with flour and egg held", milk, []int{flour, egg}, Impact{Completes: 1}},
		{"held ingredient scores zero", flour, []int{flour}, Impact{}},
		{"unrelated ingredient", sugar, []int{flour}, Impact{}},
		{"unknown id", 404, nil, Impact{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Impact(tt.id, NewSelection(tt.held...))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Completes*1000+tt.want.Progresses, got.Score())
		})
	}
}

func TestImpact_CompleteRecipesContributeNothing(t *testing.T) {
	c := bakingCatalog(t)
	// A is complete; only B (missing Milk) counts.
	sel := NewSelection(flour, egg)
	assert.Equal(t, Impact{Completes: 1}, c.Impact(milk, sel))
	assert.Equal(t, Impact{}, c.Impact(egg, sel))
}

func TestImpact_DanglingLinkBlocksCompletion(t *testing.T) {
	c := NewCatalog(
		[]Ingredient{{ID: flour, Name: "Flour"}},
		[]Recipe{recipe(1, "Bread", flour, 77)},
	)
	// Flour never completes Bread because 77 can never be satisfied.
	assert.Equal(t, Impact{Progresses: 1}, c.Impact(flour, NewSelection()))
	assert.Equal(t, Impact{Completes: 1}, c.Impact(77, NewSelection(flour)))
}

func TestImpact_Compare(t *testing.T) {
	assert.Equal(t, 1, Impact{Completes: 1}.Compare(Impact{Progresses: 5000}))
	assert.Equal(t, -1, Impact{Completes: 1, Progresses: 2}.Compare(Impact{Completes: 1, Progresses: 3}))
	assert.Equal(t, 0, Impact{Completes: 2, Progresses: 2}.Compare(Impact{Completes: 2, Progresses: 2}))
}
