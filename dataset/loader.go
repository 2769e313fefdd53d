// Package dataset assembles date-indexed frames from directories of CSV
// files: config-driven element-wise multiplication, spreadsheet date
// decoding, expanding percentile columns, and CSV round-tripping for the
// CLI.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/meenmo/vixcal/frame"
	"github.com/meenmo/vixcal/logger"
)

// Config selects and shapes a dataset directory. The JSON form is a flat
// object: one boolean per file tag, a numeric "scale", and a "cols" list
// naming the output columns (key column first).
//
//	{ "vix": true, "spx": false, "scale": 0.01, "cols": ["date", "level"] }
type Config struct {
	// Include maps a file tag to whether that file participates.
	Include map[string]bool
	// Scale multiplies every value column of the combined table.
	Scale float64
	// Cols names the output columns; Cols[0] names the key column.
	Cols []string
}

// ParseConfig decodes the JSON configuration described on Config.
func ParseConfig(raw []byte) (Config, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Config{}, fmt.Errorf("dataset: parse config: %w", err)
	}

	cfg := Config{Include: make(map[string]bool)}

	scaleRaw, ok := fields["scale"]
	if !ok {
		return Config{}, fmt.Errorf(`dataset: config is missing "scale"`)
	}
	if err := json.Unmarshal(scaleRaw, &cfg.Scale); err != nil {
		return Config{}, fmt.Errorf(`dataset: config "scale" is not a number: %w`, err)
	}
	delete(fields, "scale")

	colsRaw, ok := fields["cols"]
	if !ok {
		return Config{}, fmt.Errorf(`dataset: config is missing "cols"`)
	}
	if err := json.Unmarshal(colsRaw, &cfg.Cols); err != nil {
		return Config{}, fmt.Errorf(`dataset: config "cols" is not a string list: %w`, err)
	}
	if len(cfg.Cols) == 0 {
		return Config{}, fmt.Errorf(`dataset: config "cols" is empty`)
	}
	delete(fields, "cols")

	for tag, raw := range fields {
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Config{}, fmt.Errorf("dataset: config flag %q is not a boolean: %w", tag, err)
		}
		cfg.Include[tag] = b
	}
	return cfg, nil
}

// LoadConfig reads and parses a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dataset: read config: %w", err)
	}
	return ParseConfig(raw)
}

// fileTag derives the config tag from a data file name: the second
// underscore-separated token of the base name ("20240101_vix.csv" -> "vix").
func fileTag(name string) (string, error) {
	base := strings.Split(name, ".")[0]
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return "", fmt.Errorf("dataset: cannot derive tag from file name %q", name)
	}
	return parts[1], nil
}

// Load builds a single frame from the CSV files in dir that cfg selects.
// The key column of the lexicographically first included file is kept;
// the remaining columns are multiplied element-wise across all included
// files and scaled by cfg.Scale. Every file must share one shape, every
// file tag must have a config flag, and cfg.Cols must name every output
// column; violations are errors, never silent misalignment.
func Load(dir string, cfg Config) (*frame.Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read dir: %w", err)
	}

	log := logger.Get()

	var (
		key    []float64
		result [][]float64
		loaded int
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		tag, err := fileTag(name)
		if err != nil {
			return nil, err
		}
		include, ok := cfg.Include[tag]
		if !ok {
			return nil, fmt.Errorf("dataset: no config flag for file %q (tag %q)", name, tag)
		}
		if !include {
			log.WithFields(logger.Fields{"file": name, "tag": tag}).Debug("skipping file")
			continue
		}

		cols, err := readColumns(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if len(cols) < 2 {
			return nil, fmt.Errorf("dataset: file %q has no value columns", name)
		}

		if key == nil {
			key = cols[0]
			result = cols[1:]
			loaded++
			continue
		}
		if len(cols) != len(result)+1 || len(cols[0]) != len(key) {
			return nil, fmt.Errorf("dataset: file %q shape %dx%d does not match %dx%d",
				name, len(cols[0]), len(cols), len(key), len(result)+1)
		}
		for j := range result {
			for i := range result[j] {
				result[j][i] *= cols[j+1][i]
			}
		}
		loaded++
	}
	if key == nil {
		return nil, fmt.Errorf("dataset: no files selected in %q", dir)
	}
	if len(cfg.Cols) != len(result)+1 {
		return nil, fmt.Errorf("dataset: config names %d columns, table has %d", len(cfg.Cols), len(result)+1)
	}

	for j := range result {
		for i := range result[j] {
			result[j][i] *= cfg.Scale
		}
	}

	out := frame.New()
	if err := out.AddFloats(cfg.Cols[0], key); err != nil {
		return nil, err
	}
	for j := range result {
		if err := out.AddFloats(cfg.Cols[j+1], result[j]); err != nil {
			return nil, err
		}
	}
	log.WithFields(logger.Fields{"dir": dir, "files": loaded, "rows": len(key)}).Info("dataset loaded")
	return out, nil
}

// readColumns reads a CSV file with a header row into per-column float
// slices.
func readColumns(path string) ([][]float64, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer fd.Close()

	records, err := csv.NewReader(fd).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset: %q has no data rows", path)
	}

	ncols := len(records[0])
	cols := make([][]float64, ncols)
	for j := range cols {
		cols[j] = make([]float64, len(records)-1)
	}
	for i, rec := range records[1:] {
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %q row %d column %d: %w", path, i+2, j+1, err)
			}
			cols[j][i] = v
		}
	}
	return cols, nil
}
