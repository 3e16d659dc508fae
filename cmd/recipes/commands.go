package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/Luktock/recipe-selection-system/bench"
	"github.com/Luktock/recipe-selection-system/csvio"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/recipe"
	"github.com/Luktock/recipe-selection-system/snapshot"
	"github.com/Luktock/recipe-selection-system/sorting"
)

func (a *app) sortCommand(args []string) error {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	keyName := fs.String("key", "price", "Sort key: price, cooking_time, rating or name")
	algoName := fs.String("algo", "recursive", "Algorithm: iterative (bubble) or recursive (merge)")
	filtered := fs.Bool("filter", false, "Place cheap and quick recipes first")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	key, err := recipe.ParseKey(*keyName)
	if err != nil {
		return err
	}
	algo, err := sorting.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	c, err := a.loadCatalog()
	if err != nil {
		return err
	}
	res, err := c.Sort(key, algo, *filtered)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tNAME\tCATEGORY\t%s\tGROUP\n", key)
	for i, r := range res.Recipes {
		value, _ := key.Value(r)
		group := "-"
		if res.Filtered {
			group = "match"
			if i >= len(res.Matched) {
				group = "rest"
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%s\n", i+1, r.Name, r.Category, value, group)
	}
	return tw.Flush()
}

func (a *app) exportCommand(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	out := fs.String("o", a.cfg.Data.ExportPath, "Destination CSV file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	c, err := a.loadCatalog()
	if err != nil {
		return err
	}
	if err := csvio.SaveFile(*out, c.Recipes()); err != nil {
		return err
	}
	logging.Info().Str("path", *out).Int("recipes", c.Len()).Msg("Recipes exported")
	fmt.Fprintf(a.stdout, "Exported %d recipes to %s\n", c.Len(), *out)
	return nil
}

func (a *app) benchCommand(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	keyName := fs.String("key", a.cfg.Bench.Key, "Sort key")
	runs := fs.Int("runs", a.cfg.Bench.Runs, "Sorts per algorithm")
	size := fs.Int("size", 0, "Benchmark generated recipes instead of the catalog")
	seed := fs.Int64("seed", bench.DefaultSeed, "Seed for generated recipes")
	outDir := fs.String("out", "", "Also write markdown and JSON reports to this directory")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	key, err := recipe.ParseKey(*keyName)
	if err != nil {
		return err
	}
	var recipes []*recipe.Recipe
	if *size > 0 {
		recipes = bench.Generate(*size, *seed)
	} else {
		c, err := a.loadCatalog()
		if err != nil {
			return err
		}
		recipes = c.Recipes()
	}

	report, err := bench.Run(recipes, key, *runs)
	if err != nil {
		return err
	}
	if err := bench.WriteText(a.stdout, report); err != nil {
		return err
	}
	if *outDir != "" {
		if err := bench.SaveFiles(*outDir, report); err != nil {
			return err
		}
		logging.Info().Str("dir", *outDir).Msg("Benchmark reports written")
	}
	return nil
}

var errSnapshotUsage = errors.New("usage: recipes snapshot save|load|bench [-backend b] [-path p]")

func (a *app) snapshotCommand(args []string) error {
	if len(args) == 0 {
		return errSnapshotUsage
	}
	action := args[0]

	fs := flag.NewFlagSet("snapshot "+action, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	backend := fs.String("backend", a.cfg.Snapshot.Backend, "Backend: bbolt, badger or pebble")
	path := fs.String("path", a.cfg.Snapshot.Path, "Snapshot file or directory")
	out := fs.String("o", a.cfg.Data.ExportPath, "load: CSV file to write the snapshot to")
	size := fs.Int("size", 1000, "bench: number of generated recipes")
	if err := parseFlags(fs, args[1:]); err != nil {
		return err
	}

	switch action {
	case "save":
		c, err := a.loadCatalog()
		if err != nil {
			return err
		}
		if err := snapshot.Save(*backend, *path, c.Recipes()); err != nil {
			return err
		}
		logging.Info().Str("backend", *backend).Str("path", *path).Int("recipes", c.Len()).Msg("Snapshot saved")
		fmt.Fprintf(a.stdout, "Saved %d recipes to %s snapshot %s\n", c.Len(), *backend, *path)
	case "load":
		recipes, err := snapshot.Load(*backend, *path)
		if err != nil {
			return err
		}
		if err := csvio.SaveFile(*out, recipes); err != nil {
			return err
		}
		logging.Info().Str("backend", *backend).Str("path", *path).Int("recipes", len(recipes)).Msg("Snapshot loaded")
		fmt.Fprintf(a.stdout, "Loaded %d recipes from %s snapshot into %s\n", len(recipes), *backend, *out)
	case "bench":
		dir := filepath.Join(filepath.Dir(*path), "snapshot-bench")
		results, err := snapshot.Compare(dir, bench.Generate(*size, bench.DefaultSeed))
		if err != nil {
			return err
		}
		snapshot.PrintResults(a.stdout, results)
	default:
		return errSnapshotUsage
	}
	return nil
}
