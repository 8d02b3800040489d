package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"pantry-optimizer/match"
)

// ErrUnknownFormat is returned for catalog files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown catalog format")

// LoadCatalog reads the catalog at path, picking the decoder by extension.
func LoadCatalog(path string, log *zap.Logger) (*match.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cat *match.Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cat, err = catalogFromJSON(string(raw))
	case ".yaml", ".yml":
		cat, err = catalogFromYAML(raw)
	case ".csv":
		cat, err = importCSV(strings.NewReader(string(raw)), log)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	warnDangling(cat, log)
	log.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("ingredients", len(cat.Ingredients())),
		zap.Int("recipes", len(cat.Recipes())))
	return cat, nil
}

// warnDangling logs links that reference ingredients missing from cat.
// Those recipes can never complete.
func warnDangling(cat *match.Catalog, log *zap.Logger) {
	for _, l := range cat.DanglingLinks() {
		log.Warn("recipe links unknown ingredient",
			zap.Int("recipe_id", l.RecipeID),
			zap.Int("ingredient_id", l.IngredientID))
	}
}

// catalogFromJSON decodes
//
//	{"ingredients": [{id, name, description, unit}],
//	 "recipes": [{id, name, description, method, category,
//	              "ingredients": [{id, ingredientId, amount, unit, note}]}]}
//
// The "recipeIngredients" key is accepted as an alias for a recipe's
// "ingredients".
func catalogFromJSON(dataJSON string) (*match.Catalog, error) {
	if !gjson.Valid(dataJSON) {
		return nil, errors.New("invalid JSON")
	}

	var ingredients []match.Ingredient
	gjson.Get(dataJSON, "ingredients").ForEach(func(_, v gjson.Result) bool {
		ingredients = append(ingredients, match.Ingredient{
			ID:          int(v.Get("id").Int()),
			Name:        v.Get("name").String(),
			Description: v.Get("description").String(),
			Unit:        v.Get("unit").String(),
		})
		return true
	})

	var recipes []match.Recipe
	gjson.Get(dataJSON, "recipes").ForEach(func(_, v gjson.Result) bool {
		r := match.Recipe{
			ID:          int(v.Get("id").Int()),
			Name:        v.Get("name").String(),
			Description: v.Get("description").String(),
			Method:      v.Get("method").String(),
			Category:    v.Get("category").String(),
		}
		links := v.Get("ingredients")
		if !links.Exists() {
			links = v.Get("recipeIngredients")
		}
		links.ForEach(func(_, l gjson.Result) bool {
			r.Links = append(r.Links, match.Link{
				ID:           int(l.Get("id").Int()),
				RecipeID:     r.ID,
				IngredientID: int(l.Get("ingredientId").Int()),
				Amount:       nonNegative(l.Get("amount").Float()),
				Unit:         l.Get("unit").String(),
				Note:         firstString(l, "note", "use"),
			})
			return true
		})
		recipes = append(recipes, r)
		return true
	})

	return match.NewCatalog(ingredients, recipes), nil
}

func firstString(v gjson.Result, keys ...string) string {
	for _, k := range keys {
		if s := v.Get(k); s.Exists() && s.Type != gjson.Null {
			return s.String()
		}
	}
	return ""
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
