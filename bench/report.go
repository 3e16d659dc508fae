package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

// WriteText prints the short summary shown in the interactive menu.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Performance test: %d recipes, key %s\n", dataSize(r), r.Key)
	for _, res := range r.Results {
		fmt.Fprintf(bw, "  %-24s %d runs: %.6f s total, %.6f s/run, %d bytes allocated\n",
			res.Label+":", res.Runs, res.Total.Seconds(), res.Average().Seconds(), res.MemoryUsage)
	}
	if best, ok := r.Fastest(); ok && len(r.Results) > 1 {
		fmt.Fprintf(bw, "  fastest: %s\n", best.Label)
	}
	fmt.Fprintln(bw, "  complexity:")
	for _, res := range r.Results {
		fmt.Fprintf(bw, "    %-24s %s\n", res.Label, res.Complexity)
	}
	return bw.Flush()
}

// WriteMarkdown renders the report as a markdown document.
func WriteMarkdown(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Sort benchmark\n\n")
	fmt.Fprintf(bw, "Started: %s\n", r.StartedAt.Format(time.DateTime))
	fmt.Fprintf(bw, "CPU cores: %d\n", r.NumCPU)
	fmt.Fprintf(bw, "GOMAXPROCS: %d\n\n", r.GOMAXPROCS)
	fmt.Fprintf(bw, "## %d recipes by %s\n\n", dataSize(r), r.Key)
	fmt.Fprintln(bw, "| Algorithm | Complexity | Runs | Total | Per run | Memory | Allocations |")
	fmt.Fprintln(bw, "|-----------|------------|------|-------|---------|--------|-------------|")
	for _, res := range r.Results {
		fmt.Fprintf(bw, "| %s | %s | %d | %v | %v | %d bytes | %d |\n",
			res.Label, res.Complexity, res.Runs, res.Total, res.Average(), res.MemoryUsage, res.Mallocs)
	}
	return bw.Flush()
}

// WriteJSON encodes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// SaveFiles writes benchmark_results.md and benchmark_results.json into dir.
func SaveFiles(dir string, r *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, write := range map[string]func(io.Writer, *Report) error{
		"benchmark_results.md":   WriteMarkdown,
		"benchmark_results.json": WriteJSON,
	} {
		if err := saveFile(filepath.Join(dir, name), r, write); err != nil {
			return err
		}
	}
	return nil
}

func saveFile(path string, r *Report, write func(io.Writer, *Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func dataSize(r *Report) int {
	if len(r.Results) == 0 {
		return 0
	}
	return r.Results[0].DataSize
}
