// Command unitcheck runs the dimensional consistency analyzer as a
// standalone tool:
//
//	unitcheck ./...
//
// It also loads as a plugin into multichecker-based runners via the
// exported unitcheck.Analyzer.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/unyt-go/unyt/unitcheck"
)

func main() {
	singlechecker.Main(unitcheck.Analyzer)
}
