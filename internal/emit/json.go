package emit

import (
	"encoding/json"
	"io"

	"github.com/stylescan/stylescan/domain"
)

// jsonDocument is the full-fidelity envelope the json dialect serializes:
// the flattened corpus alongside the complete analysis result, so a
// consumer never has to re-run analysis to get at both.
type jsonDocument struct {
	Corpus domain.StyleCorpus    `json:"corpus"`
	Result *domain.AnalysisResult `json:"result,omitempty"`
}

func emitJSON(corpus domain.StyleCorpus, result *domain.AnalysisResult, w io.Writer) error {
	doc := jsonDocument{Corpus: corpus, Result: result}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return domain.NewOutputError("encoding json", err)
	}
	return nil
}
