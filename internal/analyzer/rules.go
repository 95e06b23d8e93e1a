// Package analyzer implements the style analysis engine: the frequent
// property-set miner, hierarchical clusterer, statistical analyzer, BEM
// analyzer, suggestion synthesizer, and metrics aggregator that together
// discover structure in a parsed style corpus.
package analyzer

import "github.com/stylescan/stylescan/domain"

// ExtractRules turns a StyleCorpus into the canonical flat rule list. The
// corpus is already in this shape, so extraction here is a copy that
// guarantees the returned slice is safe for the caller to mutate without
// affecting the original corpus.
func ExtractRules(corpus domain.StyleCorpus) []domain.Rule {
	rules := make([]domain.Rule, len(corpus))
	copy(rules, corpus)
	return rules
}
