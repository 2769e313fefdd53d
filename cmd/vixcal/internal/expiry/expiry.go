// Package expiry implements the `vixcal expiry` subcommand.
package expiry

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/meenmo/vixcal/calendar"
)

const layout = "2006-01-02"

func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("expiry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dateStr := fs.String("date", "", "Reference date YYYY-MM-DD (default today)")
	year := fs.Int("year", 0, "Print the monthly expiration/settlement schedule for a year instead")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}

	if *year != 0 {
		printYear(stdout, *year)
		return 0
	}

	ref := time.Now().UTC()
	if *dateStr != "" {
		var err error
		ref, err = time.Parse(layout, *dateStr)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -date: %v\n", err)
			return 2
		}
	}
	ref = calendar.Normalize(ref)

	first, second := calendar.NextTwoSettlements(ref)
	fmt.Fprintf(stdout, "reference        %s\n", ref.Format(layout))
	fmt.Fprintf(stdout, "next settlement  %s (%d days)\n", first.Format(layout), wholeDays(ref, first))
	fmt.Fprintf(stdout, "second           %s (%d days)\n", second.Format(layout), wholeDays(ref, second))
	return 0
}

func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func printYear(w io.Writer, year int) {
	fmt.Fprintf(w, "%-8s %-12s %s\n", "month", "expiration", "vix settlement")
	for month := 1; month <= 12; month++ {
		exp := calendar.MonthlyExpiration(year, month)
		settle := calendar.VIXSettlementForMonth(year, month)
		fmt.Fprintf(w, "%d-%02d  %-12s %s\n", year, month, exp.Format(layout), settle.Format(layout))
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vixcal expiry [-date 2024-03-01]")
	fmt.Fprintln(w, "  vixcal expiry -year 2024")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the next two VIX monthly settlements from a reference date,")
	fmt.Fprintln(w, "or the full expiration/settlement schedule for a year.")
}
