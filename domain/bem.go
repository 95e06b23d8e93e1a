package domain

// BemPartKind identifies which part of a Block-Element-Modifier name a
// selector decomposes into.
type BemPartKind string

const (
	BemPartBlock            BemPartKind = "block"
	BemPartElement          BemPartKind = "element"
	BemPartModifier         BemPartKind = "modifier"
	BemPartElementModifier  BemPartKind = "element_modifier"
	BemPartUnrecognized     BemPartKind = "unrecognized"
)

// BemComponent is one selector decomposed into its BEM parts, with the
// dependencies its declared values reference.
type BemComponent struct {
	Selector string
	Kind     BemPartKind

	Block    string
	Element  string
	Modifier string

	// Dependencies lists the var(--x) custom properties and .cls class
	// references found in this component's declared values, each once.
	// Values are scanned in declaration order; within one value, var()
	// references come before class references.
	Dependencies []string
}

// BemRelationKind classifies an edge in the BEM relationship graph.
type BemRelationKind string

const (
	BemRelationParent          BemRelationKind = "parent"
	BemRelationModifier        BemRelationKind = "modifier"
	BemRelationElementModifier BemRelationKind = "element_modifier"
	BemRelationVariant         BemRelationKind = "variant"
	BemRelationExtension       BemRelationKind = "extension"
	BemRelationComposition     BemRelationKind = "composition"
)

// BemRelationship is one directed edge between two components, with a
// confidence in [0,1] describing how sure the analyzer is of the edge.
type BemRelationship struct {
	From       string
	To         string
	Kind       BemRelationKind
	Confidence float64
}

// BemAnalysis is the complete output of the BEM naming subsystem: every
// component parsed from the corpus, the relationship graph between them,
// and the naming/structure suggestions it proposes. These Suggestions pass
// through verbatim into the synthesizer's unified, ranked list.
type BemAnalysis struct {
	Components    []BemComponent
	Relationships []BemRelationship
	Suggestions   []Suggestion
}

// ComponentsByBlock groups components by their Block name, keeping each
// block's members in corpus order. Blocks are map keys and carry no order.
func (a BemAnalysis) ComponentsByBlock() map[string][]BemComponent {
	grouped := make(map[string][]BemComponent)
	for _, c := range a.Components {
		grouped[c.Block] = append(grouped[c.Block], c)
	}
	return grouped
}
