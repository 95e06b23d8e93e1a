package analyzer

import (
	"github.com/stylescan/stylescan/domain"
)

// rule builds a domain.Rule from a selector and a flat list of alternating
// property, value strings, preserving declaration order.
func rule(selector string, kv ...string) domain.Rule {
	props := domain.NewPropertyMap()
	for i := 0; i+1 < len(kv); i += 2 {
		props.Set(kv[i], kv[i+1])
	}
	return domain.Rule{Selector: selector, Properties: props}
}
