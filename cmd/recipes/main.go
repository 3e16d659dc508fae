// Command recipes manages a recipe catalog loaded from CSV. Without a
// subcommand it starts the interactive menu.
//
// Usage:
//
//	recipes [-config file] [-print-config] [-V]
//	recipes [-config file] sort [-key k] [-algo a] [-filter]
//	recipes [-config file] export [-o file]
//	recipes [-config file] bench [-key k] [-runs n] [-size n] [-out dir]
//	recipes [-config file] snapshot save|load|bench [-backend b] [-path p]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Luktock/recipe-selection-system/catalog"
	"github.com/Luktock/recipe-selection-system/csvio"
	"github.com/Luktock/recipe-selection-system/internal/config"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/menu"
	"github.com/Luktock/recipe-selection-system/recipe"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recipes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML config file")
	printConfig := fs.Bool("print-config", false, "Print the effective configuration and exit")
	version := fs.Bool("V", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "recipes version %s\n", Version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: stderr})

	if *printConfig {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}
	rest := fs.Args()
	if len(rest) == 0 {
		err = a.interactive()
	} else {
		switch rest[0] {
		case "sort":
			err = a.sortCommand(rest[1:])
		case "export":
			err = a.exportCommand(rest[1:])
		case "bench":
			err = a.benchCommand(rest[1:])
		case "snapshot":
			err = a.snapshotCommand(rest[1:])
		default:
			err = fmt.Errorf("unknown command %q", rest[0])
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		logging.Err(err).Msg("Command failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// errUsage marks flag errors already reported by the flag package.
var errUsage = errors.New("usage error")

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

// loadCatalog reads the configured CSV. A missing file yields an empty catalog.
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	c := catalog.New(catalog.Options{
		Eligibility:       recipe.CheapAndQuick(a.cfg.Filter.MaxPrice, a.cfg.Filter.MaxCookingTime),
		FalsePositiveRate: a.cfg.Index.FalsePositiveRate,
	})
	n, err := csvio.LoadFile(a.cfg.Data.CSVPath, c)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Warn().Str("path", a.cfg.Data.CSVPath).Msg("CSV file not found, starting with an empty catalog")
	case err != nil:
		return nil, err
	default:
		logging.Info().Str("path", a.cfg.Data.CSVPath).Int("recipes", n).Msg("Recipes loaded")
	}
	return c, nil
}

func (a *app) filterLabel() string {
	return fmt.Sprintf("Cheap (<= $%g) AND Quick (<= %d min)", a.cfg.Filter.MaxPrice, a.cfg.Filter.MaxCookingTime)
}

func (a *app) interactive() error {
	c, err := a.loadCatalog()
	if err != nil {
		return err
	}
	key, err := recipe.ParseKey(a.cfg.Bench.Key)
	if err != nil {
		return err
	}

	prompter := menu.NewLinePrompter(a.cfg.Menu.HistoryFile)
	defer prompter.Close()

	fmt.Fprintln(a.stdout, "Welcome to the Recipe Selection System!")
	return menu.New(c, prompter, a.stdout, menu.Options{
		ExportPath:  a.cfg.Data.ExportPath,
		BenchRuns:   a.cfg.Bench.Runs,
		BenchKey:    key,
		FilterLabel: a.filterLabel(),
	}).Run()
}
