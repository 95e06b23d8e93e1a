package service

import (
	"bytes"
	"io"

	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/emit"
)

// OutputFormatterImpl renders an AnalysisResult (plus the corpus it was
// computed from) in the dialect the caller requests, delegating the actual
// rendering to internal/emit — this service only resolves the format and
// handles I/O, the way pyscn's OutputFormatterImpl dispatches by
// domain.OutputFormat but defers table/JSON construction to its own helpers.
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter service.
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format renders corpus/result as format and returns the result as a string.
func (f *OutputFormatterImpl) Format(corpus domain.StyleCorpus, result *domain.AnalysisResult, format domain.OutputFormat) (string, error) {
	var buf bytes.Buffer
	if err := emit.Emit(format, corpus, result, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders corpus/result as format directly to writer.
func (f *OutputFormatterImpl) Write(corpus domain.StyleCorpus, result *domain.AnalysisResult, format domain.OutputFormat, writer io.Writer) error {
	return emit.Emit(format, corpus, result, writer)
}
