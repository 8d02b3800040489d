package match

import (
	"maps"
	"slices"
)

// Selection is the set of held ingredient ids plus the set of focused recipe
// ids. The zero value is an empty selection. Toggle methods return a new
// Selection and never modify the receiver, so values can be shared freely.
type Selection struct {
	held    map[int]struct{}
	focused map[int]struct{}
}

// NewSelection returns a selection holding the given ingredient ids.
func NewSelection(held ...int) Selection {
	var s Selection
	if len(held) == 0 {
		return s
	}
	s.held = make(map[int]struct{}, len(held))
	for _, id := range held {
		s.held[id] = struct{}{}
	}
	return s
}

// Holds reports whether the ingredient id is selected.
func (s Selection) Holds(id int) bool {
	_, ok := s.held[id]
	return ok
}

// Focuses reports whether the recipe id is focused.
func (s Selection) Focuses(id int) bool {
	_, ok := s.focused[id]
	return ok
}

// Ingredients returns the held ingredient ids in ascending order.
func (s Selection) Ingredients() []int {
	return sortedKeys(s.held)
}

// FocusedRecipes returns the focused recipe ids in ascending order.
func (s Selection) FocusedRecipes() []int {
	return sortedKeys(s.focused)
}

// ToggleIngredient adds id to the held set, or removes it if already held.
func (s Selection) ToggleIngredient(id int) Selection {
	return Selection{held: toggle(s.held, id), focused: s.focused}
}

// ToggleFocusedRecipe adds id to the focused set, or removes it if already
// focused.
func (s Selection) ToggleFocusedRecipe(id int) Selection {
	return Selection{held: s.held, focused: toggle(s.focused, id)}
}

// WithFocus returns a copy of s whose focused set is exactly ids.
func (s Selection) WithFocus(ids ...int) Selection {
	out := Selection{held: s.held}
	if len(ids) > 0 {
		out.focused = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			out.focused[id] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both selections hold and focus the same ids.
func (s Selection) Equal(o Selection) bool {
	return setEqual(s.held, o.held) && setEqual(s.focused, o.focused)
}

// sortedKeys returns the keys of set in ascending order (nil when empty).
func sortedKeys(set map[int]struct{}) []int {
	var ids []int
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// toggle returns a fresh set; the input is never written to.
func toggle(set map[int]struct{}, id int) map[int]struct{} {
	out := make(map[int]struct{}, len(set)+1)
	maps.Copy(out, set)
	if _, ok := out[id]; ok {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func setEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// FocusCandidates narrows the ingredient list to those required by at least
// one focused recipe. With nothing focused it returns every ingredient.
// Catalog order is preserved.
func (c *Catalog) FocusCandidates(sel Selection) []Ingredient {
	if len(sel.focused) == 0 {
		return c.Ingredients()
	}
	wanted := make(map[int]bool)
	for id := range sel.focused {
		r, ok := c.Recipe(id)
		if !ok {
			continue
		}
		for _, ingID := range r.Required() {
			wanted[ingID] = true
		}
	}
	out := make([]Ingredient, 0, len(wanted))
	for _, ing := range c.ingredients {
		if wanted[ing.ID] {
			out = append(out, ing)
		}
	}
	return out
}
