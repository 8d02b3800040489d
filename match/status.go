package match

import (
	"slices"
	"strconv"
)

// Status is a recipe's completion status: complete, or the number of
// required ingredients still missing. The zero value is complete.
type Status struct {
	Missing int `json:"missing"`
}

// Complete reports whether nothing is missing.
func (s Status) Complete() bool { return s.Missing == 0 }

// Compare orders complete before incomplete, then fewer missing first.
func (s Status) Compare(o Status) int {
	switch {
	case s.Missing < o.Missing:
		return -1
	case s.Missing > o.Missing:
		return 1
	}
	return 0
}

func (s Status) String() string {
	if s.Complete() {
		return "complete"
	}
	return strconv.Itoa(s.Missing) + " more needed"
}

// Missing returns the recipe's required ingredient ids not covered by sel,
// sorted ascending. Links to ids outside the catalog are always missing,
// whatever the selection holds.
func (c *Catalog) Missing(r *Recipe, sel Selection) []int {
	var out []int
	for _, id := range r.Required() {
		if c.satisfied(id, sel) {
			continue
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Status evaluates r against sel.
func (c *Catalog) Status(r *Recipe, sel Selection) Status {
	n := 0
	for _, id := range r.Required() {
		if !c.satisfied(id, sel) {
			n++
		}
	}
	return Status{Missing: n}
}

func (c *Catalog) satisfied(id int, sel Selection) bool {
	return sel.Holds(id) && c.HasIngredient(id)
}
