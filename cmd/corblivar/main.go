// Corblivar3d is the 3D floorplanner's command-line entry point: parse
// a configuration file, a blocks file, and a nets file, run the
// simulated-annealing optimizer, and emit a results summary, per-die
// plot files, and (if requested) a solution file. Grounded on
// original_source/src/Corblivar.cpp's main() — banner, parse config
// then blocks then nets, run the optimizer, report runtime — adapted to
// Go's flag/error-return idiom in place of C++'s exceptionless struct
// fields.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cocosip/corblivar3d/internal/config"
	"github.com/cocosip/corblivar3d/internal/core"
	"github.com/cocosip/corblivar3d/internal/corberr"
	"github.com/cocosip/corblivar3d/internal/cost"
	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/ioformat"
	"github.com/cocosip/corblivar3d/internal/logx"
	"github.com/cocosip/corblivar3d/internal/opreg"
	"github.com/cocosip/corblivar3d/internal/rng"
	"github.com/cocosip/corblivar3d/internal/sa"
	"github.com/cocosip/corblivar3d/internal/thermal"
)

// thermalGridCols/Rows/Sigma size the tile grid the thermal-distribution
// proxy is computed over (spec.md §4.4); spec.md leaves the kernel's
// exact shape to the implementer, so a fixed, modest resolution is used
// rather than scaling with block count.
const (
	thermalGridCols = 16
	thermalGridRows = 16
	thermalSigma    = 1.5
)

func init() {
	opreg.Register(opreg.Operator{Name: "SWAP_WITHIN", Description: "swap two tuples' block references within one die"})
	opreg.Register(opreg.Operator{Name: "SWAP_ACROSS", Description: "swap a tuple's block reference with one on another die"})
	opreg.Register(opreg.Operator{Name: "MOVE_TUPLE", Description: "move a tuple from one die's CBL into another's"})
	opreg.Register(opreg.Operator{Name: "SWITCH_DIR", Description: "toggle a tuple's horizontal/vertical direction"})
	opreg.Register(opreg.Operator{Name: "SWITCH_JUNCTS", Description: "change a tuple's T-junction count"})
	opreg.Register(opreg.Operator{Name: "SWITCH_ORIENT", Description: "swap a referenced block's width and height"})
}

const usageLine = "usage: corblivar <benchmark_name> <config_file> <blocks_file> <nets_file> [<solution_file>]"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI and returns the process exit code: 0 on any
// completed run (spec.md §7 — INFEASIBLE is a non-fatal outcome), 1 on
// an argument, CONFIG_INVALID, INPUT_MALFORMED, or startup IO_ERROR
// (unreadable input file) failure.
func run(args []string) int {
	fs := flag.NewFlagSet("corblivar", flag.ContinueOnError)
	listOps := fs.Bool("list-ops", false, "print the registered mutation operators and exit")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usageLine)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *listOps {
		for _, name := range opreg.Names() {
			op, _ := opreg.Get(name)
			fmt.Printf("%-16s %s\n", op.Name, op.Description)
		}
		return 0
	}

	positional := fs.Args()
	if len(positional) < 4 || len(positional) > 5 {
		fs.Usage()
		return 1
	}
	benchmark, configPath, blocksPath, netsPath := positional[0], positional[1], positional[2], positional[3]
	solutionPath := ""
	if len(positional) == 5 {
		solutionPath = positional[4]
	}

	start := time.Now()
	runID := uuid.New()

	fmt.Println("Corblivar3d: Corner Block List for Varied [Block] Alignment Requests")
	fmt.Println("----- 3D Floorplanning tool ----------------------------------------")
	fmt.Printf("benchmark %q, run %s\n\n", benchmark, runID)

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corblivar: %v\n", err)
		return 1
	}

	level, err := logx.ParseLevel(cfg.LogVerbosity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corblivar: %v\n", err)
		return 1
	}
	log := logx.New(os.Stderr, level)

	arena := domain.NewArena()
	if err := loadBlocks(blocksPath, arena); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	nets, err := loadNets(netsPath, arena)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	log.Infof("loaded %d blocks, %d nets, %d layers", arena.Len(), len(nets), cfg.Layers)

	seed := uint64(cfg.Seed)
	r := rng.New(seed)
	c := core.New(arena, cfg.Layers, nil)
	c.InitRandom(r)

	grid := thermal.NewGrid(cfg.OutlineX, cfg.OutlineY, cfg.Layers, thermalGridCols, thermalGridRows, thermalSigma)
	weights := cost.Weights{
		Area:  cfg.CostAreaOutline,
		WL:    cfg.CostWL,
		TSVs:  cfg.CostTSVs,
		Temp:  cfg.CostTemp,
		Align: cfg.CostAlign,
	}
	outline := cost.Outline{X: cfg.OutlineX, Y: cfg.OutlineY}
	eval := cost.NewEvaluator(weights, outline, cfg.Layers, nets, grid)

	log.Infof("Performing SA floorplanning optimization...")
	driver := sa.New(cfg, c, eval, r, log)
	result, runErr := driver.Run()
	if runErr != nil && !errors.Is(runErr, corberr.ErrInfeasible) {
		log.Errorf("sa: %v", runErr)
		return 1
	}

	runtime := time.Since(start)
	if result.Valid {
		log.Infof("Done, floorplanning was successful")
	} else {
		log.Infof("Done, no feasible layout found after %d steps; emitting best-effort layout for inspection", result.Steps)
	}

	if err := writeOutputs(benchmark, runID, c, grid, result, runtime, solutionPath); err != nil {
		log.Errorf("writing outputs: %v", err)
	}

	log.Infof("Runtime: %s", runtime)
	return 0
}

func loadConfig(path string) (config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("opening config file %q: %w", path, corberr.ErrIO)
	}
	defer f.Close()

	raw, err := config.Parse(f)
	if err != nil {
		return config.Config{}, err
	}
	return config.Resolve(raw)
}

func loadBlocks(path string, arena *domain.Arena) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening blocks file %q: %w", path, corberr.ErrIO)
	}
	defer f.Close()
	return ioformat.ParseBlocks(f, arena)
}

func loadNets(path string, arena *domain.Arena) ([]*domain.Net, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening nets file %q: %w", path, corberr.ErrIO)
	}
	defer f.Close()
	return ioformat.ParseNets(f, arena)
}

// writeOutputs emits the results summary, one plot file per die, the
// thermal/power maps the original tool hands to an external HotSpot-style
// analyzer (§6.5; grid already holds the accumulation left by the driver's
// final cost evaluation of the reported layout), and (if solutionPath is
// non-empty) the canonical CBL solution file. IO_ERROR while writing is
// logged, not fatal (spec.md §7): the caller still reports a successful
// process exit.
func writeOutputs(benchmark string, runID uuid.UUID, c *core.Core, grid *thermal.Grid, result sa.Result, runtime time.Duration, solutionPath string) error {
	resultsPath := benchmark + ".results"
	rf, err := os.Create(resultsPath)
	if err != nil {
		return fmt.Errorf("creating results file %q: %w", resultsPath, corberr.ErrIO)
	}
	werr := ioformat.WriteResults(rf, benchmark, runID, result.Valid, result.BestCost, runtime)
	cerr := rf.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("closing results file %q: %w", resultsPath, corberr.ErrIO)
	}

	for _, d := range c.Dies {
		plotPath := fmt.Sprintf("%s.die%d.plot", benchmark, d.ID)
		pf, err := os.Create(plotPath)
		if err != nil {
			return fmt.Errorf("creating plot file %q: %w", plotPath, corberr.ErrIO)
		}
		werr := ioformat.WritePlot(pf, d)
		cerr := pf.Close()
		if werr != nil {
			return werr
		}
		if cerr != nil {
			return fmt.Errorf("closing plot file %q: %w", plotPath, corberr.ErrIO)
		}
	}

	thermalPath := benchmark + ".thermalmap"
	tf, err := os.Create(thermalPath)
	if err != nil {
		return fmt.Errorf("creating thermal map file %q: %w", thermalPath, corberr.ErrIO)
	}
	werr = ioformat.WriteThermalMaps(tf, grid)
	cerr = tf.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("closing thermal map file %q: %w", thermalPath, corberr.ErrIO)
	}

	if solutionPath == "" {
		return nil
	}
	sf, err := os.Create(solutionPath)
	if err != nil {
		return fmt.Errorf("creating solution file %q: %w", solutionPath, corberr.ErrIO)
	}
	werr = ioformat.WriteSolution(sf, runID, c.Dies)
	cerr = sf.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("closing solution file %q: %w", solutionPath, corberr.ErrIO)
	}
	return nil
}
