// Package buildset implements the `vixcal dataset` subcommand.
package buildset

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meenmo/vixcal/dataset"
	"github.com/meenmo/vixcal/logger"
)

func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dataset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "Directory of CSV files (required)")
	configPath := fs.String("config", "", "JSON config path (required)")
	output := fs.String("output", "", "Output CSV path (default stdout)")
	excelCol := fs.String("excel-col", "", "Decode this column as spreadsheet day counts and promote it to the row key")
	pctCol := fs.String("pct-col", "", "Add expanding percentile columns for this column")
	pctLevels := fs.String("pct", "0.5", "Comma-separated percentile levels for -pct-col")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}
	if *dir == "" || *configPath == "" {
		usage(stderr)
		return 2
	}

	log := logger.Get()

	cfg, err := dataset.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	f, err := dataset.Load(*dir, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	indexName := "date"
	if *excelCol != "" {
		indexName = *excelCol
		f, err = dataset.CleanExcelDates(f, *excelCol, true)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if *pctCol != "" {
		levels, err := parseLevels(*pctLevels)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		f, err = dataset.AddPercentiles(f, *pctCol, levels)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		log.WithFields(logger.Fields{"column": *pctCol, "levels": levels}).Info("percentiles added")
	}

	w := stdout
	if *output != "" {
		fd, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer fd.Close()
		w = fd
	}
	if err := dataset.WriteTable(w, f, indexName); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func parseLevels(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	levels := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid -pct value %q: %w", part, err)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vixcal dataset -dir data/ -config config.json [-output out.csv]")
	fmt.Fprintln(w, "  vixcal dataset -dir data/ -config config.json -excel-col date -pct-col level -pct 0.5,0.9")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Multiply the selected CSV files element-wise per the JSON config,")
	fmt.Fprintln(w, "optionally decode a spreadsheet date column and add percentile columns.")
}
