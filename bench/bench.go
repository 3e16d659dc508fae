// Package bench compares the running time and allocations of the sort
// algorithms over the same recipes.
package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/Luktock/recipe-selection-system/recipe"
	"github.com/Luktock/recipe-selection-system/sorting"
)

// DefaultRuns is the number of sorts timed per algorithm.
const DefaultRuns = 500

// ErrInvalidRuns is returned when runs is not positive.
var ErrInvalidRuns = errors.New("runs must be positive")

// Result is the measurement of one algorithm.
type Result struct {
	Algorithm   string        `json:"algorithm"`
	Label       string        `json:"label"`
	Complexity  string        `json:"complexity"`
	DataSize    int           `json:"data_size"`
	Runs        int           `json:"runs"`
	Total       time.Duration `json:"total_ns"`
	MemoryUsage uint64        `json:"memory_usage_bytes"`
	Mallocs     uint64        `json:"mallocs"`
}

// Average returns the mean duration of a single sort.
func (r Result) Average() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Runs)
}

// Report is a full comparison.
type Report struct {
	Key        string    `json:"key"`
	StartedAt  time.Time `json:"started_at"`
	NumCPU     int       `json:"num_cpu"`
	GOMAXPROCS int       `json:"gomaxprocs"`
	Results    []Result  `json:"results"`
}

// Fastest returns the result with the lowest total time.
func (r *Report) Fastest() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	best := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.Total < best.Total {
			best = res
		}
	}
	return best, true
}

type stats struct {
	start    time.Time
	startMem runtime.MemStats
}

func startStats() *stats {
	runtime.GC()
	s := &stats{}
	runtime.ReadMemStats(&s.startMem)
	s.start = time.Now()
	return s
}

func (s *stats) end() (time.Duration, uint64, uint64) {
	elapsed := time.Since(s.start)
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return elapsed, m.TotalAlloc - s.startMem.TotalAlloc, m.Mallocs - s.startMem.Mallocs
}

// Run sorts recipes runs times with every algorithm, ordering by key. The input
// is never modified.
func Run(recipes []*recipe.Recipe, key recipe.Key, runs int) (*Report, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRuns, runs)
	}
	if _, err := key.Comparator(); err != nil {
		return nil, err
	}

	report := &Report{
		Key:        key.String(),
		StartedAt:  time.Now(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Results:    make([]Result, 0, len(sorting.Algorithms)),
	}
	for _, algo := range sorting.Algorithms {
		res, err := measure(recipes, key, algo, runs)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func measure(recipes []*recipe.Recipe, key recipe.Key, algo sorting.Algorithm, runs int) (Result, error) {
	res := Result{
		Algorithm:  algo.String(),
		Label:      algo.Describe(),
		Complexity: algo.Complexity(),
		DataSize:   len(recipes),
		Runs:       runs,
	}

	s := startStats()
	for range runs {
		if _, err := algo.Sort(recipes, key); err != nil {
			return res, err
		}
	}
	res.Total, res.MemoryUsage, res.Mallocs = s.end()
	return res, nil
}
