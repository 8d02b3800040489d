package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pantry-optimizer/match"
)

// importCSV builds a catalog from the recipe import format:
//
//	category,name,ingredient_direction,quantity,unit,ingredient,note
//
// with one row per recipe ingredient; rows sharing a name belong to the same
// recipe. Only name and ingredient are required columns. Ids are assigned
// sequentially in order of first appearance. An ingredient takes the unit of
// the first row that mentions it. A second row for the same ingredient in one
// recipe is dropped.
func importCSV(r io.Reader, log *zap.Logger) (*match.Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return match.NewCatalog(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range []string{"name", "ingredient"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csv header: missing column %q", name)
		}
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		ingredients  []match.Ingredient
		recipes      []match.Recipe
		ingredientID = make(map[string]int)
		recipeIdx    = make(map[string]int)
		linkSeen     = make(map[[2]int]bool)
		nextLinkID   = 1
	)

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}

		recipeName := field(row, "name")
		ingName := field(row, "ingredient")
		if recipeName == "" || ingName == "" {
			log.Warn("skipping csv row without recipe or ingredient name", zap.Int("line", line))
			continue
		}

		ri, ok := recipeIdx[recipeName]
		if !ok {
			ri = len(recipes)
			recipeIdx[recipeName] = ri
			recipes = append(recipes, match.Recipe{
				ID:       ri + 1,
				Name:     recipeName,
				Category: field(row, "category"),
			})
		}

		unit := field(row, "unit")
		ingID, ok := ingredientID[ingName]
		if !ok {
			ingID = len(ingredients) + 1
			ingredientID[ingName] = ingID
			ingredients = append(ingredients, match.Ingredient{ID: ingID, Name: ingName, Unit: unit})
		}

		rec := &recipes[ri]
		key := [2]int{rec.ID, ingID}
		if linkSeen[key] {
			log.Warn("duplicate ingredient in recipe",
				zap.Int("line", line),
				zap.String("recipe", recipeName),
				zap.String("ingredient", ingName))
			continue
		}
		linkSeen[key] = true

		note := field(row, "note")
		if note == "" {
			note = "NA"
		}
		rec.Links = append(rec.Links, match.Link{
			ID:           nextLinkID,
			RecipeID:     rec.ID,
			IngredientID: ingID,
			Amount:       parseQuantity(field(row, "quantity")),
			Unit:         unit,
			Note:         note,
		})
		nextLinkID++
	}

	return match.NewCatalog(ingredients, recipes), nil
}

// parseQuantity returns 0 for anything that is not a non-negative number.
func parseQuantity(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f >= 0) || math.IsInf(f, 1) {
		return 0
	}
	return f
}
