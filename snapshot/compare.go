package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Luktock/recipe-selection-system/recipe"
)

// Result is the timing of one backend in Compare.
type Result struct {
	Backend   string
	Recipes   int
	WriteTime time.Duration
	ReadTime  time.Duration
	Size      int64
}

// Compare saves and reloads recipes on every backend under dir and reports
// write time, read time and on-disk size. dir is emptied first.
func Compare(dir string, recipes []*recipe.Recipe) ([]Result, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(Backends))
	for _, backend := range Backends {
		path := filepath.Join(dir, backend)
		res := Result{Backend: backend, Recipes: len(recipes)}

		start := time.Now()
		if err := Save(backend, path, recipes); err != nil {
			return results, fmt.Errorf("%s save: %w", backend, err)
		}
		res.WriteTime = time.Since(start)

		start = time.Now()
		loaded, err := Load(backend, path)
		if err != nil {
			return results, fmt.Errorf("%s load: %w", backend, err)
		}
		res.ReadTime = time.Since(start)
		if len(loaded) != len(recipes) {
			return results, fmt.Errorf("%s: read %d recipes, wrote %d", backend, len(loaded), len(recipes))
		}

		if res.Size, err = dirSize(path); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// PrintResults writes a fixed-width comparison table.
func PrintResults(w io.Writer, results []Result) {
	fmt.Fprintln(w, "==================================================================")
	fmt.Fprintf(w, "%-10s | %-8s | %-14s | %-14s | %-10s\n", "backend", "recipes", "write", "read", "size")
	fmt.Fprintln(w, "------------------------------------------------------------------")
	for _, r := range results {
		fmt.Fprintf(w, "%-10s | %-8d | %-14v | %-14v | %-10s\n",
			r.Backend, r.Recipes,
			r.WriteTime.Round(time.Microsecond), r.ReadTime.Round(time.Microsecond),
			fmt.Sprintf("%.2f KB", float64(r.Size)/1024))
	}
	fmt.Fprintln(w, "==================================================================")
}
