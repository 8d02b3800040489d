package match

import "slices"

// CompletionWeight is the multiplier applied to Completes in Impact.Score.
const CompletionWeight = 1000

// Impact counts what adding one ingredient to a selection would do.
type Impact struct {
	// Completes is the number of recipes whose only missing ingredient it is.
	Completes int `json:"completes"`
	// Progresses is the number of recipes missing it among two or more others.
	Progresses int `json:"progresses"`
}

// Score flattens the impact into a single number for display.
// Ordering uses Compare instead, so Completes always dominates even when
// Progresses exceeds CompletionWeight.
func (im Impact) Score() int {
	return im.Completes*CompletionWeight + im.Progresses
}

// Compare orders by Completes, then Progresses, ascending.
func (im Impact) Compare(o Impact) int {
	switch {
	case im.Completes != o.Completes:
		if im.Completes < o.Completes {
			return -1
		}
		return 1
	case im.Progresses < o.Progresses:
		return -1
	case im.Progresses > o.Progresses:
		return 1
	}
	return 0
}

// Impact scores ingredient id against every recipe in the catalog. Recipes
// that are already complete have an empty missing set and contribute nothing;
// a held ingredient is never missing, so its impact is zero.
func (c *Catalog) Impact(id int, sel Selection) Impact {
	var im Impact
	for i := range c.recipes {
		missing := c.Missing(&c.recipes[i], sel)
		if !slices.Contains(missing, id) {
			continue
		}
		if len(missing) == 1 {
			im.Completes++
		} else {
			im.Progresses++
		}
	}
	return im
}
