package transform

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
	"github.com/cmmoran/flowts/internal/parser"
)

// withRule installs r for k for the duration of the test.
func withRule(t *testing.T, k model.Kind, r Rule) {
	t.Helper()
	old, had := rules[k]
	rules[k] = r
	t.Cleanup(func() {
		if had {
			rules[k] = old
		} else {
			delete(rules, k)
		}
	})
}

func parseFile(t *testing.T, src string) (*model.File, *State) {
	t.Helper()
	f, err := parser.Parse(src, parser.DefaultGrammar())
	require.NoError(t, err)
	return f, NewState(Options{Debug: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDriverSplicesLists(t *testing.T) {
	withRule(t, model.KindDebuggerStatement, Rule{Exit: func(_ *State, n, _ model.Node) Result {
		return Splice(&model.EmptyStatement{}, &model.EmptyStatement{})
	}})
	f, st := parseFile(t, "a;\ndebugger;\nb;")
	require.NoError(t, Run(st, f))

	var kinds []model.Kind
	for _, s := range f.Program.Body {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []model.Kind{
		model.KindExpressionStatement,
		model.KindEmptyStatement,
		model.KindEmptyStatement,
		model.KindExpressionStatement,
	}, kinds)
}

func TestDriverSpliceIntoFieldKeepsFirst(t *testing.T) {
	withRule(t, model.KindDebuggerStatement, Rule{Exit: func(_ *State, n, _ model.Node) Result {
		return Splice(&model.EmptyStatement{}, &model.BlockStatement{})
	}})
	f, st := parseFile(t, "if (x) debugger;")
	require.NoError(t, Run(st, f))
	stmt := f.Program.Body[0].(*model.IfStatement)
	assert.IsType(t, &model.EmptyStatement{}, stmt.Consequent)
}

func TestDriverRemoves(t *testing.T) {
	withRule(t, model.KindDebuggerStatement, Rule{Exit: func(*State, model.Node, model.Node) Result {
		return Remove()
	}})
	f, st := parseFile(t, "debugger;\nb;")
	require.NoError(t, Run(st, f))
	require.Len(t, f.Program.Body, 1)
	assert.IsType(t, &model.ExpressionStatement{}, f.Program.Body[0])
}

func TestDriverEnterSkipsChildren(t *testing.T) {
	visited := 0
	withRule(t, model.KindIdentifier, Rule{Enter: func(*State, model.Node, model.Node) Result {
		visited++
		return Keep()
	}})
	withRule(t, model.KindCallExpression, Rule{Enter: func(_ *State, n, _ model.Node) Result {
		return Replace(&model.NullLiteral{})
	}})
	f, st := parseFile(t, "f(a, b);\nc;")
	require.NoError(t, Run(st, f))
	assert.Equal(t, 1, visited)
	assert.IsType(t, &model.NullLiteral{}, f.Program.Body[0].(*model.ExpressionStatement).Expression)
}

func TestDriverNeverRevisitsReplacements(t *testing.T) {
	calls := 0
	withRule(t, model.KindExpressionStatement, Rule{Exit: func(_ *State, n, _ model.Node) Result {
		calls++
		return Replace(model.CopyBase(&model.ExpressionStatement{Expression: model.Ident("x")}, n))
	}})
	f, st := parseFile(t, "a;\nb;")
	require.NoError(t, Run(st, f))
	assert.Equal(t, 2, calls)
}

func TestRunReportsLeftovers(t *testing.T) {
	withRule(t, model.KindStringTypeAnnotation, Rule{})
	f, st := parseFile(t, "let a: string;")
	err := Run(st, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StringTypeAnnotation")
}

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet()
	s.Add("b")
	s.Add("a")
	s.Add("b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.Equal(t, []string{"b", "a"}, s.Items())
}

func TestWarningString(t *testing.T) {
	w := Warning{Msg: "boom", Span: model.Span{
		Start: model.Position{Line: 3, Column: 4},
		End:   model.Position{Line: 3, Column: 9},
	}}
	assert.Equal(t, "3:5: boom", w.String())
	assert.Equal(t, "boom", Warning{Msg: "boom"}.String())
}
