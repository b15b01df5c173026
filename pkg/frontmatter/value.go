package frontmatter

// Kind discriminates the shapes a frontmatter value can take.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindObjectList
	KindMap
)

// Value is the tagged union the parser produces for each frontmatter key.
// Exactly one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Scalar  any                 // string, bool, int64, float64 or nil
	List    []string            // inline or block list of scalars
	Objects []map[string]string // block list of objects (properties stay strings)
	Map     map[string]Value    // block mapping; entries are KindScalar or KindList
}

// Record is the generic key→value form of a parsed frontmatter block.
type Record map[string]Value

// Scalar wraps a coerced scalar as a Value.
func Scalar(v any) Value { return Value{Kind: KindScalar, Scalar: v} }

// List wraps a slice of strings as a list Value.
func List(items []string) Value { return Value{Kind: KindList, List: items} }

// Objects wraps a slice of string maps as an object-list Value.
func Objects(objs []map[string]string) Value { return Value{Kind: KindObjectList, Objects: objs} }

// Mapping wraps a key→Value map as a mapping Value.
func Mapping(m map[string]Value) Value { return Value{Kind: KindMap, Map: m} }

// AsString returns the scalar as a string, or "" if the value is not a string scalar.
func (v Value) AsString() string {
	if v.Kind != KindScalar {
		return ""
	}
	s, _ := v.Scalar.(string)
	return s
}

// AsInt returns the scalar as an int. Float scalars are truncated.
func (v Value) AsInt() (int, bool) {
	if v.Kind != KindScalar {
		return 0, false
	}
	switch n := v.Scalar.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// AsBool returns the scalar as a bool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindScalar {
		return false, false
	}
	b, ok := v.Scalar.(bool)
	return b, ok
}

// AsList returns the value as a string slice. Empty lists and non-list values
// both come back nil, so callers can range without checking Kind.
func (v Value) AsList() []string {
	if v.Kind != KindList {
		return nil
	}
	return v.List
}
