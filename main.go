//go:build !lambda

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"pantry-optimizer/match"
)

const usage = `Usage: pantry-optimizer [flags] <catalog> [toggle...]

Positional arguments:
  catalog   Catalog file (.json, .yaml, .yml or .csv)
  toggle    Ingredient name to toggle, or @recipe to toggle focus

Flags:
`

// options are the per-run inputs that do not live in Config.
type options struct {
	ingredientQuery string
	recipeQuery     string
	detail          string
	toggles         []string
}

func run(w io.Writer, cfg Config, opts options, log *zap.Logger) error {
	cat, err := LoadCatalog(cfg.CatalogPath, log)
	if err != nil {
		return err
	}

	s := NewSession(cat)
	if err := s.Apply(opts.toggles...); err != nil {
		return err
	}
	log.Debug("selection",
		zap.Ints("held", s.Selection.Ingredients()),
		zap.Ints("focused", s.Selection.FocusedRecipes()))

	rep := buildReport(s, cfg, opts)
	if opts.detail != "" {
		r, err := FindRecipe(cat, opts.detail)
		if err != nil {
			return err
		}
		d := cat.Detail(&r, s.Selection)
		rep.Detail = &d
	}

	if cfg.Format == "json" {
		return writeJSON(w, rep)
	}
	if rep.Detail != nil {
		fmt.Fprintln(w, FormatDetail(*rep.Detail))
	}
	fmt.Fprintln(w, FormatRecipes(rep.Recipes))
	fmt.Fprint(w, FormatIngredients(rep.Ingredients))
	return nil
}

func buildReport(s *Session, cfg Config, opts options) Report {
	return Report{
		Held:        s.Selection.Ingredients(),
		Focused:     s.Selection.FocusedRecipes(),
		Recipes:     truncate(match.RankedRecipesInCategory(s.Catalog, s.Selection, opts.recipeQuery, cfg.Category), cfg.Limit),
		Ingredients: truncate(match.RankedIngredients(s.Catalog, s.Selection, opts.ingredientQuery), cfg.Limit),
	}
}

func main() {
	configPath := flag.String("config", "", "Config file (yaml, json or toml)")
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Log debug output to stderr")
	limit := flag.Int("limit", 0, "Maximum rows per list (0 = all)")
	category := flag.String("category", "", "Only rank recipes in this category")
	var opts options
	flag.StringVar(&opts.ingredientQuery, "q", "", "Filter ingredients by name")
	flag.StringVar(&opts.recipeQuery, "rq", "", "Filter recipes by name")
	flag.StringVar(&opts.detail, "recipe", "", "Show ingredients of one recipe (name or slug)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json":
			if *jsonOut {
				cfg.Format = "json"
			} else {
				cfg.Format = "text"
			}
		case "verbose":
			cfg.Verbose = *verbose
		case "limit":
			cfg.Limit = *limit
		case "category":
			cfg.Category = *category
		}
	})

	args := flag.Args()
	if len(args) > 0 {
		cfg.CatalogPath = args[0]
		opts.toggles = args[1:]
	}
	if cfg.CatalogPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(os.Stdout, cfg, opts, log); err != nil {
		log.Error("run failed", zap.Error(err))
		log.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
