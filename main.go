package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/df07/go-radiosity/pkg/batch"
	"github.com/df07/go-radiosity/pkg/geometry"
	"github.com/df07/go-radiosity/pkg/hemicube"
	"github.com/df07/go-radiosity/pkg/loaders"
	"github.com/df07/go-radiosity/pkg/preview"
	"github.com/df07/go-radiosity/pkg/scene"
	"github.com/df07/go-radiosity/pkg/solver"
	"github.com/df07/go-radiosity/pkg/subdivide"
	"github.com/df07/go-radiosity/pkg/visibility"
)

// Config holds the configuration for a single invocation of the CLI,
// beyond the three positional arguments spec.md requires.
type Config struct {
	BatchDir      string
	Reflectance   float64
	HemicubeSubs  int
	ColorBlending bool
	PreviewPath   string
	Debug         bool
	Help          bool
}

func main() {
	config, args := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger := newLogger(config.Debug)

	if config.BatchDir != "" {
		os.Exit(runBatch(config, logger))
	}

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: radiosity <patchSize> <inputFile> <numIterations>")
		os.Exit(1)
	}

	os.Exit(runSingle(config, args, logger))
}

func parseFlags() (Config, []string) {
	config := Config{}
	flag.Float64Var(&config.Reflectance, "reflectance", geometry.DefaultReflectance, "shared diffuse reflectance applied to every patch")
	flag.IntVar(&config.HemicubeSubs, "hemicube", hemicube.DefaultSubdivisions, "hemicube subdivisions per face")
	flag.BoolVar(&config.ColorBlending, "colorBlending", true, "tint reflected light by patch color instead of a plain scalar reflectance")
	flag.StringVar(&config.BatchDir, "batch", "", "solve every scene file discovered in this directory instead of a single file")
	flag.StringVar(&config.PreviewPath, "preview", "", "write a Gouraud-shaded PNG of the solved scene to this path")
	flag.BoolVar(&config.Debug, "debug", false, "log each pipeline stage as it runs")
	flag.BoolVar(&config.Help, "help", false, "show help information")
	flag.Parse()
	return config, flag.Args()
}

func showHelp() {
	fmt.Println("radiosity: progressive radiosity solver for diffuse quad scenes")
	fmt.Println("Usage: radiosity [options] <patchSize> <inputFile> <numIterations>")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Input files are selected by extension: .obj, .pat, .los, .for")
	fmt.Println(".los files already carry resolved visibility; .for files already")
	fmt.Println("carry visibility and form factors, so those stages are skipped.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  radiosity 20 scenes/box.obj 8")
	fmt.Println("  radiosity -preview out.png 20 scenes/box.obj 8")
	fmt.Println("  radiosity -batch scenes/ 20 _ 8")
}

func newLogger(debug bool) *log.Logger {
	level := "info"
	if debug {
		level = "debug"
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	logger.SetPrefix(fmt.Sprintf("[%s] ", level))
	return logger
}

func runSingle(config Config, args []string, logger *log.Logger) int {
	patchSize, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid patch size %q: %v\n", args[0], err)
		return 1
	}
	inputFile := args[1]
	iterations, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid iteration count %q: %v\n", args[2], err)
		return 1
	}

	start := time.Now()
	patches, err := solveFile(inputFile, pipelineConfig{
		PatchSize:     patchSize,
		Reflectance:   config.Reflectance,
		HemicubeSubs:  config.HemicubeSubs,
		Iterations:    iterations,
		ColorBlending: config.ColorBlending,
	}, config.Debug, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
		return 1
	}
	if config.Debug {
		logger.Printf("solved %d patches in %v", len(patches), time.Since(start))
	}

	if config.PreviewPath != "" {
		if err := preview.RenderFile(patches, preview.DefaultConfig(), config.PreviewPath); err != nil {
			fmt.Fprintf(os.Stderr, "preview write failed: %v\n", err)
			return 1
		}
	}

	fmt.Printf("solved %d patches from %s in %d iterations\n", len(patches), inputFile, iterations)
	return 0
}

func runBatch(config Config, logger *log.Logger) int {
	files, err := scene.Discover(config.BatchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.BatchDir, err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no recognized scene files found\n", config.BatchDir)
		return 1
	}

	patchSizeArg, iterationsArg := flag.Arg(0), flag.Arg(2)
	patchSize, err := strconv.ParseFloat(patchSizeArg, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid patch size %q: %v\n", patchSizeArg, err)
		return 1
	}
	iterations, err := strconv.Atoi(iterationsArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid iteration count %q: %v\n", iterationsArg, err)
		return 1
	}

	cfg := pipelineConfig{
		PatchSize:     patchSize,
		Reflectance:   config.Reflectance,
		HemicubeSubs:  config.HemicubeSubs,
		Iterations:    iterations,
		ColorBlending: config.ColorBlending,
	}

	if config.Debug {
		logger.Printf("solving %d scene files from %s", len(files), config.BatchDir)
	}

	jobs := make([]batch.Job, len(files))
	for i, f := range files {
		f := f
		jobs[i] = batch.Job{
			Name: f.Name,
			Solve: func() ([]*geometry.Patch, error) {
				return solveFile(f.Path, cfg, config.Debug, logger)
			},
		}
	}

	status := 0
	for _, o := range batch.Run(context.Background(), jobs, batch.DefaultConfig()) {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", o.Name, o.Err)
			status = 1
			continue
		}
		fmt.Printf("%s: solved %d patches\n", o.Name, len(o.Patches))

		if config.PreviewPath != "" {
			path := filepath.Join(filepath.Dir(config.PreviewPath), o.Name+filepath.Ext(config.PreviewPath))
			if err := preview.RenderFile(o.Patches, preview.DefaultConfig(), path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: preview write failed: %v\n", o.Name, err)
				status = 1
			}
		}
	}
	return status
}

// pipelineConfig bundles the knobs every stage of solveFile needs.
type pipelineConfig struct {
	PatchSize     float64
	Reflectance   float64
	HemicubeSubs  int
	Iterations    int
	ColorBlending bool
}

// solveFile loads inputFile and runs it through however much of the
// subdivide -> visibility -> form-factor -> solve pipeline its format
// hasn't already done for it: a .obj scene needs every stage, a .pat
// scene is already subdivided, a .los scene already has visibility
// resolved, and a .for scene already has form factors too.
func solveFile(path string, cfg pipelineConfig, debug bool, logger *log.Logger) ([]*geometry.Patch, error) {
	solverCfg := solver.Config{Iterations: cfg.Iterations, ColorBlending: cfg.ColorBlending}
	subdivisions := cfg.HemicubeSubs
	if subdivisions == 0 {
		subdivisions = hemicube.DefaultSubdivisions
	}

	switch filepath.Ext(path) {
	case ".obj":
		quads, err := loaders.ParseObjFile(path)
		if err != nil {
			return nil, err
		}
		patches, err := subdivide.Quads(quads, subdivide.Config{PatchSize: cfg.PatchSize, Reflectance: cfg.Reflectance})
		if err != nil {
			return nil, err
		}
		if debug {
			logger.Printf("%s: subdivided %d quads into %d patches", path, len(quads), len(patches))
		}
		visibility.Resolve(patches)
		if err := hemicube.ComputeFormFactors(patches, subdivisions); err != nil {
			return nil, err
		}
		return patches, solver.Solve(patches, solverCfg)

	case ".pat":
		patches, err := loaders.ParsePatFile(path, cfg.Reflectance)
		if err != nil {
			return nil, err
		}
		if debug {
			logger.Printf("%s: loaded %d patches", path, len(patches))
		}
		visibility.Resolve(patches)
		if err := hemicube.ComputeFormFactors(patches, subdivisions); err != nil {
			return nil, err
		}
		return patches, solver.Solve(patches, solverCfg)

	case ".los":
		patches, err := loaders.ParseLosFile(path, cfg.Reflectance)
		if err != nil {
			return nil, err
		}
		if debug {
			logger.Printf("%s: loaded %d patches with resolved visibility", path, len(patches))
		}
		if err := hemicube.ComputeFormFactors(patches, subdivisions); err != nil {
			return nil, err
		}
		return patches, solver.Solve(patches, solverCfg)

	case ".for":
		patches, err := loaders.ParseForFile(path, cfg.Reflectance)
		if err != nil {
			return nil, err
		}
		if debug {
			logger.Printf("%s: loaded %d patches with resolved visibility and form factors", path, len(patches))
		}
		return patches, solver.Solve(patches, solverCfg)

	default:
		return nil, fmt.Errorf("unrecognized scene file extension %q", filepath.Ext(path))
	}
}

