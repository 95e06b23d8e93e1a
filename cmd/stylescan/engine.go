package main

import (
	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/analyzer"
	"github.com/stylescan/stylescan/internal/logging"
)

// newEngine builds the analysis engine for a single CLI invocation,
// configuring the shared logger's verbosity first so engine warnings land
// at the right level.
func newEngine(verbose bool) domain.Engine {
	logging.Init(verbose)
	return analyzer.NewEngine(logging.NewDomainLogger())
}
