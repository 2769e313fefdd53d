// Package annotate implements the `vixcal annotate` subcommand.
package annotate

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/vixcal/dataset"
	"github.com/meenmo/vixcal/frame"
	"github.com/meenmo/vixcal/logger"
)

func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("annotate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "Input CSV path (required)")
	output := fs.String("output", "", "Output CSV path (default stdout)")
	dateCol := fs.String("date-col", "date", "Name of the date column in the input")
	two := fs.Bool("two", false, "Annotate the next two settlements instead of one")
	keepDates := fs.Bool("keep-dates", false, "With -two, keep the raw settlement date columns")
	col := fs.String("col", "", "Name for the settlement date column (single-settlement mode)")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}
	if *input == "" {
		usage(stderr)
		return 2
	}

	log := logger.Get()

	f, err := dataset.ReadTable(*input, *dateCol)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var annotated *frame.Frame
	if *two {
		annotated, err = frame.AnnotateNextTwoSettlements(f, *keepDates)
	} else {
		annotated, err = frame.AnnotateNextSettlement(f, *col)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.WithFields(logger.Fields{"input": *input, "rows": annotated.Len()}).Info("table annotated")

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
	if err := dataset.WriteTable(w, annotated, *dateCol); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vixcal annotate -input table.csv [-output out.csv]")
	fmt.Fprintln(w, "  vixcal annotate -input table.csv -two -keep-dates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a date-indexed CSV and add VIX settlement day-count columns.")
}
