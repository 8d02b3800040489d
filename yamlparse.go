package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pantry-optimizer/match"
)

// catalogFile is the top-level structure of a YAML catalog. It mirrors the
// JSON layout.
type catalogFile struct {
	Ingredients []match.Ingredient `yaml:"ingredients"`
	Recipes     []match.Recipe     `yaml:"recipes"`
}

func catalogFromYAML(raw []byte) (*match.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	for i := range f.Recipes {
		r := &f.Recipes[i]
		for j := range r.Links {
			r.Links[j].RecipeID = r.ID
			r.Links[j].Amount = nonNegative(r.Links[j].Amount)
		}
	}
	return match.NewCatalog(f.Ingredients, f.Recipes), nil
}
