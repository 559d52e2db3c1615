// Ellingham diagram generator.
//
// One-shot batch tool: load the built-in reaction tables, validate them,
// normalize units (Kelvin -> Celsius, kcal -> kJ), render the two-panel
// figure and write it out as EPS, PNG and PDF. There is no runtime input;
// the tables are compiled in, and every run over the same data produces the
// same figure.
//
// Design notes:
//   - The raw tables keep the reference sources' units; Normalize returns a
//     new table rather than mutating, so conversion can never be applied twice.
//   - Phase-boundary continuity of the published data is checked but only
//     warned about: the reference tables themselves carry small mismatches.
//   - Any failure is terminal. The tool logs the error and exits non-zero;
//     there is no partial output to clean up because Export stops at the
//     first failed file.
package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/ltegg/ellingham/src/diagram"
	"github.com/ltegg/ellingham/src/reaction"
)

func main() {
	outDir := flag.String("out", ".", "Directory to write the diagram files into")
	formats := flag.String("formats", strings.Join(diagram.Formats, ","), "Comma-separated output formats (eps|png|pdf)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	checkContinuity := flag.Bool("check-continuity", true, "Warn when a reaction's segments do not meet at phase boundaries")
	flag.Parse()

	diagram.SetLogLevel(*logLevel)
	start := time.Now()

	table := reaction.Load()
	if err := reaction.Validate(table); err != nil {
		diagram.Errorf("invalid reaction table: %v", err)
		os.Exit(1)
	}
	if *checkContinuity {
		for _, issue := range reaction.CheckContinuity(table) {
			diagram.Warnf("phase boundary mismatch: %s", issue)
		}
	}

	fig, err := diagram.Build(reaction.Normalize(table))
	if err != nil {
		diagram.Errorf("build figure: %v", err)
		os.Exit(1)
	}
	if err := diagram.Export(fig, *outDir, strings.Split(*formats, ",")); err != nil {
		diagram.Errorf("export: %v", err)
		os.Exit(1)
	}
	diagram.Infof("done in %s", time.Since(start).Round(time.Millisecond))
}
