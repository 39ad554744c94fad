package model

import "reflect"

// Walk calls fn for n and its descendants in document order. Children of a
// node are skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	VisitSlots(n, walker(fn))
}

type walker func(Node) bool

func (w walker) Field(slot *Node) { Walk(*slot, w) }

func (w walker) List(slot *[]Node) {
	for _, c := range *slot {
		Walk(c, w)
	}
}

// FindOrigin returns the distinct origin-only kinds still present under n.
func FindOrigin(n Node) []Kind {
	seen := map[Kind]bool{}
	var out []Kind
	Walk(n, func(c Node) bool {
		if k := c.Kind(); k.Flavor() == Origin && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
		return true
	})
	return out
}

// Contains reports whether any node under n satisfies pred.
func Contains(n Node, pred func(Node) bool) bool {
	found := false
	Walk(n, func(c Node) bool {
		if found {
			return false
		}
		if pred(c) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of n without any attached comments, for rewrites
// that need the same subtree in two places.
func Clone(n Node) Node {
	if isNil(n) {
		return nil
	}
	v := reflect.ValueOf(n).Elem()
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	out := cp.Interface().(Node)
	b := out.Base()
	b.Leading, b.Trailing, b.Inner = nil, nil, nil
	VisitSlots(out, cloner{})
	return out
}

type cloner struct{}

func (cloner) Field(slot *Node) { *slot = Clone(*slot) }

func (cloner) List(slot *[]Node) {
	if *slot == nil {
		return
	}
	out := make([]Node, len(*slot))
	for i, c := range *slot {
		out[i] = Clone(c)
	}
	*slot = out
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// IsNil reports whether n holds no node.
func IsNil(n Node) bool { return isNil(n) }
