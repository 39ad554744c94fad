package transform

import (
	"github.com/cmmoran/flowts/internal/model"
)

// indexComments fills the span and line indexes and records the owners the
// parser assigned to every comment.
func (st *State) indexComments(f *model.File) {
	for _, c := range f.Comments {
		st.comments[c.Key()] = c
		st.LineToComment[c.Span.Start.Line] = c
	}
	model.Walk(f.Program, func(n model.Node) bool {
		st.Track(n)
		return true
	})
}

// Track records n as the owner of its leading and trailing comments. A
// replacement that took over the comments of the node it replaced becomes
// their owner.
func (st *State) Track(n model.Node) {
	b := n.Base()
	for _, c := range b.Leading {
		st.attachment(c).Leading = n
	}
	for _, c := range b.Trailing {
		st.attachment(c).Trailing = n
	}
	for _, c := range b.Inner {
		st.attachment(c)
	}
}

func (st *State) attachment(c *model.Comment) *Attachment {
	k := c.Key()
	a, ok := st.Attachments[k]
	if !ok {
		a = &Attachment{}
		st.Attachments[k] = a
		st.comments[k] = c
	}
	return a
}

// attached reports whether any node claims c.
func (st *State) attached(c *model.Comment) bool {
	_, ok := st.Attachments[c.Key()]
	return ok
}

// forget drops c from the attachment index after it was removed from the tree.
func (st *State) forget(c *model.Comment) {
	delete(st.Attachments, c.Key())
}

// recoverTrailing gives the last member of an object type the comments that
// start on the lines between the member's end and the end of the object and
// that no node claims.
func (st *State) recoverTrailing(last model.Node, end int) {
	b := last.Base()
	for line := b.Span.End.Line; line < end; line++ {
		c, ok := st.LineToComment[line]
		if !ok || st.attached(c) {
			continue
		}
		b.Trailing = append(b.Trailing, c)
		st.attachment(c).Trailing = last
	}
}

// FinishComments resolves comments recorded as trailing one surviving node
// and leading another: the leading copy is dropped, unless the comment is a
// line comment on the line where the trailing owner ends, which is left in
// place.
func (st *State) FinishComments(root model.Node) {
	live := map[model.Node]bool{}
	model.Walk(root, func(n model.Node) bool {
		live[n] = true
		return true
	})
	for k, a := range st.Attachments {
		if a.Leading == nil || a.Trailing == nil || a.Leading == a.Trailing {
			continue
		}
		if !live[a.Leading] || !live[a.Trailing] {
			continue
		}
		c := st.comments[k]
		if c == nil {
			continue
		}
		if !c.Block && c.Span.Start.Line == a.Trailing.Base().Span.End.Line {
			continue
		}
		lb := a.Leading.Base()
		lb.Leading = without(lb.Leading, k)
		a.Leading = nil
	}
}

func without(cs []*model.Comment, k model.SpanKey) []*model.Comment {
	var out []*model.Comment
	for _, c := range cs {
		if c.Key() != k {
			out = append(out, c)
		}
	}
	return out
}
