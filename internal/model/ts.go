package model

type TSTypeAnnotation struct {
	NodeBase
	TypeAnnotation Node
}

// TSKeyword is a keyword type: string, number, boolean, any, unknown, never,
// void, null, undefined, symbol, bigint, object or this.
type TSKeyword struct {
	NodeBase
	Name string
}

// TSLiteralType wraps a StringLiteral, NumericLiteral, BooleanLiteral or
// BigIntLiteral.
type TSLiteralType struct {
	NodeBase
	Literal Node
}

type TSUnionType struct {
	NodeBase
	Types []Node
}

type TSIntersectionType struct {
	NodeBase
	Types []Node
}

type TSArrayType struct {
	NodeBase
	ElementType Node
}

type TSTupleType struct {
	NodeBase
	ElementTypes []Node
}

// TSFunctionType parameters are Identifiers or RestElements; ReturnType is a
// TSTypeAnnotation.
type TSFunctionType struct {
	NodeBase
	TypeParameters Node
	Parameters     []Node
	ReturnType     Node
}

type TSParenthesizedType struct {
	NodeBase
	TypeAnnotation Node
}

type TSTypeReference struct {
	NodeBase
	TypeName       Node
	TypeParameters Node
}

type TSQualifiedName struct {
	NodeBase
	Left  Node
	Right Node
}

type TSTypeLiteral struct {
	NodeBase
	Members []Node
}

type TSPropertySignature struct {
	NodeBase
	Key            Node
	TypeAnnotation Node
	Computed       bool
	Optional       bool
	Readonly       bool
	Static         bool
}

type TSMethodSignature struct {
	NodeBase
	// Method is "method", "get" or "set".
	Method         string
	Key            Node
	TypeParameters Node
	Parameters     []Node
	TypeAnnotation Node
	Computed       bool
	Optional       bool
	Static         bool
}

type TSIndexSignature struct {
	NodeBase
	Parameters     []Node
	TypeAnnotation Node
	Readonly       bool
	Static         bool
}

type TSCallSignatureDeclaration struct {
	NodeBase
	TypeParameters Node
	Parameters     []Node
	TypeAnnotation Node
}

// TSMappedType is "{ [P in C]?: V }"; TypeParameter is a TSTypeParameter
// whose Constraint is C.
type TSMappedType struct {
	NodeBase
	TypeParameter  Node
	TypeAnnotation Node
	Optional       bool
	Readonly       bool
}

type TSTypeOperator struct {
	NodeBase
	Operator       string
	TypeAnnotation Node
}

type TSIndexedAccessType struct {
	NodeBase
	ObjectType Node
	IndexType  Node
}

type TSTypeQuery struct {
	NodeBase
	ExprName Node
}

type TSImportType struct {
	NodeBase
	Argument  Node
	Qualifier Node
}

type TSTypeParameterDeclaration struct {
	NodeBase
	Params []Node
}

type TSTypeParameter struct {
	NodeBase
	Name       string
	Constraint Node
	Default    Node
}

type TSTypeParameterInstantiation struct {
	NodeBase
	Params []Node
}

type TSTypeAliasDeclaration struct {
	NodeBase
	Declare        bool
	ID             Node
	TypeParameters Node
	TypeAnnotation Node
}

type TSInterfaceDeclaration struct {
	NodeBase
	Declare        bool
	ID             Node
	TypeParameters Node
	Extends        []Node
	Body           Node
}

type TSInterfaceBody struct {
	NodeBase
	Body []Node
}

type TSExpressionWithTypeArguments struct {
	NodeBase
	Expression     Node
	TypeParameters Node
}

type TSAsExpression struct {
	NodeBase
	Expression     Node
	TypeAnnotation Node
}

// TSModuleDeclaration is an ambient "declare module 'm' { ... }".
type TSModuleDeclaration struct {
	NodeBase
	ID   Node
	Body []Node
}

type TSExportAssignment struct {
	NodeBase
	Expression Node
}

type TSDeclareFunction struct {
	NodeBase
	Declare        bool
	ID             Node
	TypeParameters Node
	Params         []Node
	ReturnType     Node
}

func (*TSTypeAnnotation) Kind() Kind              { return KindTSTypeAnnotation }
func (*TSKeyword) Kind() Kind                     { return KindTSKeyword }
func (*TSLiteralType) Kind() Kind                 { return KindTSLiteralType }
func (*TSUnionType) Kind() Kind                   { return KindTSUnionType }
func (*TSIntersectionType) Kind() Kind            { return KindTSIntersectionType }
func (*TSArrayType) Kind() Kind                   { return KindTSArrayType }
func (*TSTupleType) Kind() Kind                   { return KindTSTupleType }
func (*TSFunctionType) Kind() Kind                { return KindTSFunctionType }
func (*TSParenthesizedType) Kind() Kind           { return KindTSParenthesizedType }
func (*TSTypeReference) Kind() Kind               { return KindTSTypeReference }
func (*TSQualifiedName) Kind() Kind               { return KindTSQualifiedName }
func (*TSTypeLiteral) Kind() Kind                 { return KindTSTypeLiteral }
func (*TSPropertySignature) Kind() Kind           { return KindTSPropertySignature }
func (*TSMethodSignature) Kind() Kind             { return KindTSMethodSignature }
func (*TSIndexSignature) Kind() Kind              { return KindTSIndexSignature }
func (*TSCallSignatureDeclaration) Kind() Kind    { return KindTSCallSignatureDeclaration }
func (*TSMappedType) Kind() Kind                  { return KindTSMappedType }
func (*TSTypeOperator) Kind() Kind                { return KindTSTypeOperator }
func (*TSIndexedAccessType) Kind() Kind           { return KindTSIndexedAccessType }
func (*TSTypeQuery) Kind() Kind                   { return KindTSTypeQuery }
func (*TSImportType) Kind() Kind                  { return KindTSImportType }
func (*TSTypeParameterDeclaration) Kind() Kind    { return KindTSTypeParameterDeclaration }
func (*TSTypeParameter) Kind() Kind               { return KindTSTypeParameter }
func (*TSTypeParameterInstantiation) Kind() Kind  { return KindTSTypeParameterInstantiation }
func (*TSTypeAliasDeclaration) Kind() Kind        { return KindTSTypeAliasDeclaration }
func (*TSInterfaceDeclaration) Kind() Kind        { return KindTSInterfaceDeclaration }
func (*TSInterfaceBody) Kind() Kind               { return KindTSInterfaceBody }
func (*TSExpressionWithTypeArguments) Kind() Kind { return KindTSExpressionWithTypeArguments }
func (*TSAsExpression) Kind() Kind                { return KindTSAsExpression }
func (*TSDeclareFunction) Kind() Kind             { return KindTSDeclareFunction }
func (*TSModuleDeclaration) Kind() Kind           { return KindTSModuleDeclaration }
func (*TSExportAssignment) Kind() Kind            { return KindTSExportAssignment }

// Ident returns a fresh identifier.
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// Keyword returns a fresh keyword type.
func Keyword(name string) *TSKeyword {
	return &TSKeyword{Name: name}
}

// TypeRef returns a reference to name with the given type arguments. An
// empty argument list produces a reference without type parameters.
func TypeRef(name Node, args ...Node) *TSTypeReference {
	ref := &TSTypeReference{TypeName: name}
	if len(args) > 0 {
		ref.TypeParameters = &TSTypeParameterInstantiation{Params: args}
	}
	return ref
}

// Qualified builds a left-nested qualified name from dotted parts.
func Qualified(parts ...string) Node {
	var n Node = Ident(parts[0])
	for _, p := range parts[1:] {
		n = &TSQualifiedName{Left: n, Right: Ident(p)}
	}
	return n
}

// Annotate wraps t in a type annotation, or returns nil for a nil type.
func Annotate(t Node) Node {
	if t == nil {
		return nil
	}
	return &TSTypeAnnotation{TypeAnnotation: t}
}
