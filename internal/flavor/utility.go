package flavor

import (
	"github.com/cmmoran/flowts/internal/model"
)

// Utility is a built-in origin utility type.
type Utility int

const (
	UtilityInvalid Utility = iota
	Keys
	Values
	ReadOnly
	Shape
	NonMaybeType
	Exact
	PropertyType
	ElementType
	FlowFixMe
	Diff
	Call
	Class
	Rest
	utilityCount
)

// UtilityEntry describes how one utility type is converted.
type UtilityEntry struct {
	// Name is the origin spelling.
	Name string
	// ImportName is the name recorded for import synthesis.
	ImportName string
	// Arity is the number of type arguments Expand needs.
	Arity int
	// AlwaysInline entries have no counterpart in the support module and are
	// expanded regardless of configuration.
	AlwaysInline bool
	// Expand builds the inlined target type; nil when the entry can only be
	// imported.
	Expand func(args []model.Node) model.Node
}

// Policy resolves the entry's policy under the inline configuration.
func (e UtilityEntry) Policy(inline bool) Policy {
	if e.Expand != nil && (e.AlwaysInline || inline) {
		return Inline
	}
	return Import
}

var utilities = [utilityCount]UtilityEntry{
	Keys: {Name: "$Keys", Arity: 1, Expand: func(a []model.Node) model.Node {
		return keyof(a[0])
	}},
	Values: {Name: "$Values", Arity: 1, Expand: func(a []model.Node) model.Node {
		return &model.TSIndexedAccessType{ObjectType: a[0], IndexType: keyof(model.Clone(a[0]))}
	}},
	ReadOnly: {Name: "$ReadOnly", Arity: 1, Expand: func(a []model.Node) model.Node {
		return model.TypeRef(model.Ident("Readonly"), a[0])
	}},
	Shape: {Name: "$Shape", Arity: 1, Expand: func(a []model.Node) model.Node {
		return model.TypeRef(model.Ident("Partial"), a[0])
	}},
	NonMaybeType: {Name: "$NonMaybeType", Arity: 1, Expand: func(a []model.Node) model.Node {
		return model.TypeRef(model.Ident("NonNullable"), a[0])
	}},
	Exact: {Name: "$Exact", Arity: 1, AlwaysInline: true, Expand: func(a []model.Node) model.Node {
		return a[0]
	}},
	PropertyType: {Name: "$PropertyType", Arity: 2, Expand: indexed},
	ElementType:  {Name: "$ElementType", Arity: 2, Expand: indexed},
	FlowFixMe: {Name: "$FlowFixMe", AlwaysInline: true, Expand: func([]model.Node) model.Node {
		return model.Keyword("any")
	}},
	Diff:  {Name: "$Diff"},
	Call:  {Name: "$Call"},
	Class: {Name: "Class"},
	// $Rest only differs from $Diff on exact objects, which the target lacks.
	Rest: {Name: "$Rest", ImportName: "$Diff"},
}

var utilityByName = func() map[string]Utility {
	m := make(map[string]Utility, utilityCount)
	for u := UtilityInvalid + 1; u < utilityCount; u++ {
		m[utilities[u].Name] = u
	}
	return m
}()

func keyof(t model.Node) model.Node {
	return &model.TSTypeOperator{Operator: "keyof", TypeAnnotation: t}
}

func indexed(a []model.Node) model.Node {
	return &model.TSIndexedAccessType{ObjectType: a[0], IndexType: a[1]}
}

// LookupUtility finds the utility type spelled name.
func LookupUtility(name string) (Utility, bool) {
	u, ok := utilityByName[name]
	return u, ok
}

// Utilities returns every utility type.
func Utilities() []Utility {
	out := make([]Utility, 0, utilityCount-1)
	for u := UtilityInvalid + 1; u < utilityCount; u++ {
		out = append(out, u)
	}
	return out
}

// Entry returns the conversion entry of u.
func (u Utility) Entry() UtilityEntry {
	if u <= UtilityInvalid || u >= utilityCount {
		return UtilityEntry{}
	}
	e := utilities[u]
	if e.ImportName == "" {
		e.ImportName = e.Name
	}
	return e
}

func (u Utility) String() string {
	if e := u.Entry(); e.Name != "" {
		return e.Name
	}
	return "Invalid"
}
