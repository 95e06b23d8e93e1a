package corpus

import (
	"gopkg.in/yaml.v3"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValueKind tags a lowered YAML value with its shape, per spec.md's Design
// Notes: "the parser receives deeply dynamic content... lowered to tagged
// variants {Scalar(String), Mapping(ordered map), Sequence(list)}".
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindMapping
	KindSequence
)

// Value is a single lowered YAML node. Exactly one of Scalar/Mapping/
// Sequence is meaningful, selected by Kind.
type Value struct {
	Kind     ValueKind
	Scalar   string
	Mapping  *orderedmap.OrderedMap[string, Value]
	Sequence []Value
}

// IsScalar reports whether v is a scalar (string-shaped) value.
func (v Value) IsScalar() bool { return v.Kind == KindScalar }

// lower converts a yaml.Node into a Value, preserving mapping key order.
// Document nodes are unwrapped to their single child. Alias nodes (*name)
// are not followed: like any other unrecognized kind, they lower to an
// empty scalar.
func lower(node *yaml.Node) (Value, error) {
	if node == nil {
		return Value{Kind: KindScalar, Scalar: ""}, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Value{Kind: KindMapping, Mapping: orderedmap.New[string, Value]()}, nil
		}
		return lower(node.Content[0])
	case yaml.ScalarNode:
		return Value{Kind: KindScalar, Scalar: node.Value}, nil
	case yaml.SequenceNode:
		seq := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := lower(child)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, v)
		}
		return Value{Kind: KindSequence, Sequence: seq}, nil
	case yaml.MappingNode:
		m := orderedmap.New[string, Value]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			val, err := lower(valNode)
			if err != nil {
				return Value{}, err
			}
			m.Set(keyNode.Value, val)
		}
		return Value{Kind: KindMapping, Mapping: m}, nil
	default:
		// Alias nodes and any other unrecognized kind become an empty
		// scalar rather than an error, matching the "skip, don't error" stance on
		// non-scalar/unexpected content.
		return Value{Kind: KindScalar, Scalar: ""}, nil
	}
}

// Get returns the value for key if v is a mapping containing it.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping || v.Mapping == nil {
		return Value{}, false
	}
	return v.Mapping.Get(key)
}

// Keys returns a mapping's keys in declaration order, or nil otherwise.
func (v Value) Keys() []string {
	if v.Kind != KindMapping || v.Mapping == nil {
		return nil
	}
	keys := make([]string, 0, v.Mapping.Len())
	for pair := v.Mapping.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
