package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PropertyMap is an ordered mapping from property name to value, preserving
// the declaration order of a rule's properties. Property names are unique
// within a single PropertyMap.
type PropertyMap = orderedmap.OrderedMap[string, string]

// NewPropertyMap returns an empty, ready-to-use PropertyMap.
func NewPropertyMap() *PropertyMap {
	return orderedmap.New[string, string]()
}

// Rule is a single named style declaration: a selector paired with its
// ordered set of property -> value assignments.
type Rule struct {
	Selector   string
	Properties *PropertyMap
}

// PropertyNames returns the rule's property names in declaration order.
func (r Rule) PropertyNames() []string {
	if r.Properties == nil {
		return nil
	}
	names := make([]string, 0, r.Properties.Len())
	for pair := r.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// HasProperty reports whether the rule declares the given property.
func (r Rule) HasProperty(name string) bool {
	if r.Properties == nil {
		return false
	}
	_, ok := r.Properties.Get(name)
	return ok
}

// StyleCorpus is the ordered sequence of rules submitted for analysis. An
// empty corpus is valid and yields an empty result with no error.
type StyleCorpus []Rule
