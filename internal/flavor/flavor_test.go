package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
)

func TestUtilityTableIsComplete(t *testing.T) {
	for _, u := range Utilities() {
		e := u.Entry()
		require.NotEmpty(t, e.Name, "utility %d", int(u))
		got, ok := LookupUtility(e.Name)
		require.True(t, ok)
		assert.Equal(t, u, got)
		assert.NotEmpty(t, e.ImportName)
		if e.AlwaysInline {
			assert.NotNil(t, e.Expand, "%s is always inlined but cannot expand", e.Name)
		}
	}
}

func TestUtilityPolicy(t *testing.T) {
	tests := []struct {
		name   string
		inline bool
		want   Policy
	}{
		{"$Keys", false, Import},
		{"$Keys", true, Inline},
		{"$Exact", false, Inline},
		{"$FlowFixMe", false, Inline},
		{"$Diff", true, Import},
		{"$Call", true, Import},
		{"Class", true, Import},
		{"$Rest", true, Import},
		{"$ElementType", true, Inline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := LookupUtility(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, u.Entry().Policy(tt.inline))
		})
	}
}

func TestRestImportsDiff(t *testing.T) {
	assert.Equal(t, "$Diff", Rest.Entry().ImportName)
	assert.Equal(t, "$Keys", Keys.Entry().ImportName)
}

func TestUtilityExpand(t *testing.T) {
	obj := model.TypeRef(model.Ident("O"))

	values := Values.Entry().Expand([]model.Node{obj})
	ia, ok := values.(*model.TSIndexedAccessType)
	require.True(t, ok)
	assert.Same(t, obj, ia.ObjectType)
	op, ok := ia.IndexType.(*model.TSTypeOperator)
	require.True(t, ok)
	assert.Equal(t, "keyof", op.Operator)
	assert.NotSame(t, obj, op.TypeAnnotation, "the operand must not be shared")

	ro := ReadOnly.Entry().Expand([]model.Node{obj}).(*model.TSTypeReference)
	assert.Equal(t, "Readonly", ro.TypeName.(*model.Identifier).Name)

	assert.Same(t, obj, Exact.Entry().Expand([]model.Node{obj}))
	assert.Equal(t, "any", FlowFixMe.Entry().Expand(nil).(*model.TSKeyword).Name)
	assert.Nil(t, Diff.Entry().Expand)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := LookupUtility("$NotAThing")
	assert.False(t, ok)
	_, ok = LookupReact("Props")
	assert.False(t, ok)
	_, ok = LookupReactMember("SyntheticEvent")
	assert.False(t, ok, "synthetic events are not members of the namespace")
	assert.Equal(t, "Invalid", Utility(99).String())
	assert.Equal(t, "Invalid", ReactName(-1).String())
}

func TestReactTableIsComplete(t *testing.T) {
	for _, r := range ReactNames() {
		e := r.Entry()
		require.NotEmpty(t, e.Flow, "react name %d", int(r))
		require.NotEmpty(t, e.TS)
		got, ok := LookupReact(e.Flow)
		require.True(t, ok)
		assert.Equal(t, r, got)
		assert.Equal(t, QualifyByState, e.Policy())
	}
}

// typeString renders the small type trees the tables build.
func typeString(n model.Node) string {
	switch n := n.(type) {
	case *model.Identifier:
		return n.Name
	case *model.TSQualifiedName:
		return typeString(n.Left) + "." + typeString(n.Right)
	case *model.TSTypeReference:
		s := typeString(n.TypeName)
		if tp, ok := n.TypeParameters.(*model.TSTypeParameterInstantiation); ok {
			s += "<"
			for i, p := range tp.Params {
				if i > 0 {
					s += ", "
				}
				s += typeString(p)
			}
			s += ">"
		}
		return s
	}
	return "?"
}

func TestReactResolve(t *testing.T) {
	arg := func() []model.Node { return []model.Node{model.TypeRef(model.Ident("T"))} }
	tests := []struct {
		name string
		r    ReactName
		args []model.Node
		bare bool
		want string
	}{
		{"synthetic", SyntheticInputEvent, arg(), false, "React.SyntheticEvent<T>"},
		{"synthetic without args", SyntheticMouseEvent, nil, false, "React.MouseEvent"},
		{"private node", PrivateNode, nil, false, "React.ReactNode"},
		{"private element", PrivateElement, arg(), false, "React.ReactElement<React.ComponentProps<T>, T>"},
		{"private sfc", PrivateStatelessFunctionalComponent, arg(), false, "React.FC<T>"},
		{"member", Node, nil, false, "React.ReactNode"},
		{"bare", Node, nil, true, "ReactNode"},
		{"element config", ElementConfig, arg(), false, "JSX.LibraryManagedAttributes<T, React.ComponentProps<T>>"},
		{"bare element config", ElementConfig, arg(), true, "JSX.LibraryManagedAttributes<T, ComponentProps<T>>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeString(tt.r.Resolve(tt.args, tt.bare)))
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "inline", Inline.String())
	assert.Equal(t, "import", Import.String())
	assert.Equal(t, "qualify-by-state", QualifyByState.String())
}
