package mcp

import (
	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/analyzer"
	"github.com/stylescan/stylescan/internal/logging"
)

func analyzerEngine() domain.Engine {
	return analyzer.NewEngine(logging.NewDomainLogger())
}
