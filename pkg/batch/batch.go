// Package batch runs the radiosity pipeline over several scenes at once,
// bounding concurrency the way a tile-based renderer bounds its worker
// count: one goroutine per scene, capped at a fixed pool size.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-radiosity/pkg/geometry"
)

// Job names one scene to solve and the work that solves it. Solve is a
// thunk rather than a *scene.Scene so a job can come from any of the
// input formats, some of which skip stages a plain quad scene needs
// (a .for file already carries form factors, for instance).
type Job struct {
	Name  string
	Solve func() ([]*geometry.Patch, error)
}

// Outcome pairs a job's result with any error produced while solving it.
// A batch runs every job to completion even if some fail, so a caller can
// report every failure rather than stopping at the first one.
type Outcome struct {
	Name    string
	Patches []*geometry.Patch
	Err     error
}

// Config controls how many scenes a Run processes concurrently.
type Config struct {
	// Concurrency caps how many scenes solve at once. Zero selects
	// runtime.NumCPU().
	Concurrency int
}

// DefaultConfig returns a Config capped at the number of available CPUs.
func DefaultConfig() Config {
	return Config{Concurrency: runtime.NumCPU()}
}

// Run solves every job concurrently, bounded by cfg.Concurrency, and
// returns one Outcome per job in submission order. ctx cancellation stops
// scheduling new jobs but lets in-flight solves finish; errgroup's
// SetLimit provides the worker cap without a hand-rolled pool.
func Run(ctx context.Context, jobs []Job, cfg Config) []Outcome {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}

	outcomes := make([]Outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Name: job.Name, Err: err}
				return nil
			}
			patches, err := job.Solve()
			outcomes[i] = Outcome{Name: job.Name, Patches: patches, Err: err}
			return nil
		})
	}

	// Every job thunk swallows its own error into outcomes[i] and always
	// returns nil, so g.Wait() never aborts the group early; the return
	// value is discarded here on purpose. This keeps a single failing
	// scene from cancelling scenes already in flight.
	_ = g.Wait()

	return outcomes
}
