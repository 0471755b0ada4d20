// Package config parses and validates the floorplanner's plain
// `key = value` configuration file (spec.md §6). Grounded on the
// teacher's jpeg2000/roi_config.go Validate-separate-from-Resolve shape:
// parsing collects raw key/value pairs, Resolve fills a typed Config
// and validates it, rejecting invalid values (it never clamps).
package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cocosip/corblivar3d/internal/corberr"
)

// Config is the fully validated, typed configuration for one run.
type Config struct {
	Layers int

	OutlineX, OutlineY float64

	LoopFactor float64
	LoopLimit  int

	TempInitFactor float64

	TempPhaseTrans12Factor float64
	TempPhaseTrans23Factor float64

	TempFactorPhase1 float64
	TempFactorPhase2 float64
	TempFactorPhase3 float64

	CostAreaOutline float64
	CostWL          float64
	CostTSVs        float64
	CostTemp        float64
	CostAlign       float64

	Seed int64

	// LogVerbosity is spec.md §6's optional MINIMAL/MEDIUM/MAXIMUM log
	// verbosity selector; empty if the key was not set, resolved to a
	// logx.Level by the caller (internal/config does not depend on
	// internal/logx to keep this package's import graph a leaf).
	LogVerbosity string
}

// requiredKeys lists every key spec.md §6 requires; a missing one is
// CONFIG_INVALID.
var requiredKeys = []string{
	"layers", "outline_x", "outline_y",
	"loop_factor", "loop_limit",
	"temp_init_factor",
	"temp_phase_trans_12_factor", "temp_phase_trans_23_factor",
	"temp_factor_phase1", "temp_factor_phase2", "temp_factor_phase3",
	"cost_area_outline", "cost_WL", "cost_TSVs", "cost_temp", "cost_align",
	"seed",
}

// Parse reads key = value assignments from r: '#' introduces a comment,
// blank lines are ignored, and each kept line must be `key = value`.
func Parse(r io.Reader) (map[string]string, error) {
	raw := make(map[string]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config line %d: expected \"key = value\": %w", lineNo, corberr.ErrConfigInvalid)
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		raw[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", corberr.ErrIO)
	}
	return raw, nil
}

// Resolve validates raw key/value pairs into a typed Config. Unknown
// keys are silently ignored (forward-compatible); a missing required
// key or a malformed numeric value is CONFIG_INVALID.
func Resolve(raw map[string]string) (Config, error) {
	var cfg Config
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return Config{}, fmt.Errorf("config: missing required key %q: %w", k, corberr.ErrConfigInvalid)
		}
	}

	var err error
	if cfg.Layers, err = reqInt(raw, "layers"); err != nil {
		return Config{}, err
	}
	if cfg.Layers <= 0 {
		return Config{}, fmt.Errorf("config: layers must be positive, got %d: %w", cfg.Layers, corberr.ErrConfigInvalid)
	}
	if cfg.OutlineX, err = reqFloat(raw, "outline_x"); err != nil {
		return Config{}, err
	}
	if cfg.OutlineY, err = reqFloat(raw, "outline_y"); err != nil {
		return Config{}, err
	}
	if cfg.OutlineX <= 0 || cfg.OutlineY <= 0 {
		return Config{}, fmt.Errorf("config: outline_x/outline_y must be positive: %w", corberr.ErrConfigInvalid)
	}
	if cfg.LoopFactor, err = reqFloat(raw, "loop_factor"); err != nil {
		return Config{}, err
	}
	if cfg.LoopLimit, err = reqInt(raw, "loop_limit"); err != nil {
		return Config{}, err
	}
	if cfg.LoopLimit <= 0 {
		return Config{}, fmt.Errorf("config: loop_limit must be positive, got %d: %w", cfg.LoopLimit, corberr.ErrConfigInvalid)
	}
	if cfg.TempInitFactor, err = reqFloat(raw, "temp_init_factor"); err != nil {
		return Config{}, err
	}
	if cfg.TempPhaseTrans12Factor, err = reqFloat(raw, "temp_phase_trans_12_factor"); err != nil {
		return Config{}, err
	}
	if cfg.TempPhaseTrans23Factor, err = reqFloat(raw, "temp_phase_trans_23_factor"); err != nil {
		return Config{}, err
	}
	if cfg.TempFactorPhase1, err = reqFloat(raw, "temp_factor_phase1"); err != nil {
		return Config{}, err
	}
	if cfg.TempFactorPhase2, err = reqFloat(raw, "temp_factor_phase2"); err != nil {
		return Config{}, err
	}
	if cfg.TempFactorPhase3, err = reqFloat(raw, "temp_factor_phase3"); err != nil {
		return Config{}, err
	}
	if cfg.CostAreaOutline, err = reqFloat(raw, "cost_area_outline"); err != nil {
		return Config{}, err
	}
	if cfg.CostWL, err = reqFloat(raw, "cost_WL"); err != nil {
		return Config{}, err
	}
	if cfg.CostTSVs, err = reqFloat(raw, "cost_TSVs"); err != nil {
		return Config{}, err
	}
	if cfg.CostTemp, err = reqFloat(raw, "cost_temp"); err != nil {
		return Config{}, err
	}
	if cfg.CostAlign, err = reqFloat(raw, "cost_align"); err != nil {
		return Config{}, err
	}
	seed, err := reqInt(raw, "seed")
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	// log_verbosity is optional and not in requiredKeys: a run with no
	// opinion on logging should not be CONFIG_INVALID.
	cfg.LogVerbosity = raw["log_verbosity"]

	return cfg, nil
}

func reqFloat(raw map[string]string, key string) (float64, error) {
	v, err := strconv.ParseFloat(raw[key], 64)
	if err != nil {
		return 0, fmt.Errorf("config: key %q: not a number (%q): %w", key, raw[key], corberr.ErrConfigInvalid)
	}
	return v, nil
}

func reqInt(raw map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(raw[key])
	if err != nil {
		return 0, fmt.Errorf("config: key %q: not an integer (%q): %w", key, raw[key], corberr.ErrConfigInvalid)
	}
	return v, nil
}
