package main

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"pantry-optimizer/match"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type rankRequest struct {
	Selected        []int  `json:"selected"`
	Focused         []int  `json:"focused"`
	IngredientQuery string `json:"ingredientQuery"`
	RecipeQuery     string `json:"recipeQuery"`
	Category        string `json:"category"`
	Limit           int    `json:"limit"`
	Recipe          int    `json:"recipe"`
}

type server struct {
	cat *match.Catalog
	log *zap.Logger
}

func (s *server) handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req rankRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
	}
	if req.Limit < 0 {
		return errResp(400, "limit must not be negative")
	}

	sel := match.NewSelection(req.Selected...).WithFocus(req.Focused...)
	rep := Report{
		Held:        sel.Ingredients(),
		Focused:     sel.FocusedRecipes(),
		Recipes:     truncate(match.RankedRecipesInCategory(s.cat, sel, req.RecipeQuery, req.Category), req.Limit),
		Ingredients: truncate(match.RankedIngredients(s.cat, sel, req.IngredientQuery), req.Limit),
	}
	if req.Recipe != 0 {
		r, ok := s.cat.Recipe(req.Recipe)
		if !ok {
			return errResp(404, fmt.Sprintf("recipe %d not found", req.Recipe))
		}
		d := s.cat.Detail(&r, sel)
		rep.Detail = &d
	}

	respJSON, err := json.Marshal(rep)
	if err != nil {
		s.log.Error("encode response", zap.Error(err))
		return errResp(500, "internal error")
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
