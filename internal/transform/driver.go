package transform

import (
	"fmt"

	"github.com/cmmoran/flowts/internal/model"
)

// Action tells the driver what a rule did with the node it was given.
type Action int

const (
	Unchanged Action = iota
	Replaced
	Spliced
	Removed
)

// Result is returned by every rule handler.
type Result struct {
	Action Action
	Node   model.Node
	Nodes  []model.Node
}

// Replace returns a result replacing the visited node with n. A nil n
// removes the node.
func Replace(n model.Node) Result {
	if n == nil || model.IsNil(n) {
		return Result{Action: Removed}
	}
	return Result{Action: Replaced, Node: n}
}

// Splice returns a result replacing the visited node with nodes.
func Splice(nodes ...model.Node) Result {
	return Result{Action: Spliced, Nodes: nodes}
}

// Remove returns a result dropping the visited node.
func Remove() Result { return Result{Action: Removed} }

// Keep returns a result leaving the visited node in place.
func Keep() Result { return Result{} }

// Handler rewrites n, whose parent is given for rules that depend on
// context. Handlers never panic on unsupported input; they degrade and warn.
type Handler func(st *State, n, parent model.Node) Result

// Rule holds the handlers run before and after a node's children.
type Rule struct {
	Enter Handler
	Exit  Handler
}

// Run converts the tree of f in place. Comments are indexed first and the
// duplicate resolution pass runs last, so f is ready for printing when Run
// returns. An error reports origin kinds that no rule removed.
func Run(st *State, f *model.File) error {
	st.indexComments(f)
	res := st.visit(f.Program, nil)
	if res.Action == Replaced {
		if p, ok := res.Node.(*model.Program); ok {
			f.Program = p
		}
	}
	st.FinishComments(f.Program)
	if left := model.FindOrigin(f.Program); len(left) > 0 {
		return fmt.Errorf("unconverted origin nodes remain: %v", left)
	}
	return nil
}

// visit applies the rules for n and its subtree. Replacements are never
// visited again.
func (st *State) visit(n, parent model.Node) Result {
	r := rules[n.Kind()]
	if r.Enter != nil {
		if res := r.Enter(st, n, parent); res.Action != Unchanged {
			st.replaced(n, res)
			return res
		}
	}
	model.VisitSlots(n, slotVisitor{st: st, parent: n})
	if r.Exit != nil {
		res := r.Exit(st, n, parent)
		st.replaced(n, res)
		return res
	}
	return Result{}
}

// replaced registers the comment owners of the nodes that took n's place.
func (st *State) replaced(n model.Node, res Result) {
	var out []model.Node
	switch res.Action {
	case Replaced:
		out = []model.Node{res.Node}
	case Spliced:
		out = res.Nodes
	default:
		return
	}
	for _, r := range out {
		if model.IsNil(r) {
			continue
		}
		if r.Base().HasComments() {
			st.Track(r)
		}
		if st.Options.Debug {
			st.Logger.Debug("replaced node", "from", n.Kind().String(), "to", r.Kind().String(),
				"line", n.Base().Span.Start.Line)
		}
	}
}

type slotVisitor struct {
	st     *State
	parent model.Node
}

// Field writes the outcome of visiting a single-child slot. A splice keeps
// its first node.
func (v slotVisitor) Field(slot *model.Node) {
	if model.IsNil(*slot) {
		return
	}
	res := v.st.visit(*slot, v.parent)
	switch res.Action {
	case Replaced:
		*slot = res.Node
	case Spliced:
		if len(res.Nodes) > 0 {
			*slot = res.Nodes[0]
		} else {
			*slot = nil
		}
	case Removed:
		*slot = nil
	}
}

// List writes the outcome of visiting each list element. Nil holes are kept.
func (v slotVisitor) List(slot *[]model.Node) {
	items := *slot
	if len(items) == 0 {
		return
	}
	out := make([]model.Node, 0, len(items))
	for _, c := range items {
		if model.IsNil(c) {
			out = append(out, c)
			continue
		}
		res := v.st.visit(c, v.parent)
		switch res.Action {
		case Unchanged:
			out = append(out, c)
		case Replaced:
			out = append(out, res.Node)
		case Spliced:
			out = append(out, res.Nodes...)
		}
	}
	*slot = out
}
