package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/vixcal/cmd/vixcal/internal/annotate"
	"github.com/meenmo/vixcal/cmd/vixcal/internal/buildset"
	"github.com/meenmo/vixcal/cmd/vixcal/internal/expiry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "expiry":
		return expiry.Run(args[1:], stdout, stderr)
	case "annotate":
		return annotate.Run(args[1:], stdout, stderr)
	case "dataset":
		return buildset.Run(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vixcal <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  expiry    Upcoming VIX settlements or a full-year schedule")
	fmt.Fprintln(w, "  annotate  Stamp settlement columns onto a date-indexed CSV")
	fmt.Fprintln(w, "  dataset   Assemble a dataset directory per a JSON config")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `vixcal <command> -h` for command-specific help.")
}
