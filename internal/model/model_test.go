package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFlavor(t *testing.T) {
	tests := []struct {
		kind Kind
		want Flavor
	}{
		{KindProgram, Shared},
		{KindJSXText, Shared},
		{KindTypeAnnotation, Origin},
		{KindDeclaredPredicate, Origin},
		{KindTSTypeAnnotation, Target},
		{KindTSDeclareFunction, Target},
		{KindDeclareModuleExports, Origin},
		{KindTSExportAssignment, Target},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Flavor())
		})
	}
}

func TestKindsAreNamed(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotEqual(t, "Invalid", k.String(), "kind %d has no name", int(k))
	}
}

func TestCommentKey(t *testing.T) {
	c := &Comment{Text: " hi", Span: Span{Start: Position{Offset: 3}, End: Position{Offset: 8}}}
	assert.Equal(t, SpanKey("3:8"), c.Key())
}

func TestFindOrigin(t *testing.T) {
	decl := &VariableDeclaration{
		DeclKind: "let",
		Declarations: []Node{&VariableDeclarator{
			ID: &Identifier{Name: "a", TypeAnnotation: &TypeAnnotation{
				TypeAnnotation: &FlowKeyword{Type: KindStringTypeAnnotation},
			}},
		}},
	}
	prog := &Program{Body: []Node{decl}}
	assert.Equal(t, []Kind{KindTypeAnnotation, KindStringTypeAnnotation}, FindOrigin(prog))

	decl.Declarations[0].(*VariableDeclarator).ID.(*Identifier).TypeAnnotation = Annotate(Keyword("string"))
	assert.Empty(t, FindOrigin(prog))
}

func TestClone(t *testing.T) {
	orig := TypeRef(Ident("Array"), Keyword("string"))
	orig.Leading = []*Comment{{Text: " c"}}

	cp, ok := Clone(orig).(*TSTypeReference)
	require.True(t, ok)
	assert.Empty(t, cp.Leading)
	assert.NotSame(t, orig.TypeName, cp.TypeName)
	assert.NotSame(t, orig.TypeParameters, cp.TypeParameters)

	cp.TypeName.(*Identifier).Name = "ReadonlyArray"
	assert.Equal(t, "Array", orig.TypeName.(*Identifier).Name)
}

func TestCopyBase(t *testing.T) {
	from := &TypeAlias{}
	from.Span = Span{Start: Position{Line: 2}, End: Position{Line: 3}}
	from.Leading = []*Comment{{Text: " lead"}}
	to := CopyBase(&TSTypeAliasDeclaration{}, from)
	assert.Equal(t, from.Span, to.Span)
	assert.Equal(t, from.Leading, to.Leading)
}

func TestQualified(t *testing.T) {
	n := Qualified("JSX", "LibraryManagedAttributes")
	q, ok := n.(*TSQualifiedName)
	require.True(t, ok)
	assert.Equal(t, "JSX", q.Left.(*Identifier).Name)
	assert.Equal(t, "LibraryManagedAttributes", q.Right.(*Identifier).Name)
}
