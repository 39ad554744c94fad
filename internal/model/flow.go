package model

// TypeAnnotation wraps the type following a ":" in binding positions.
type TypeAnnotation struct {
	NodeBase
	TypeAnnotation Node
}

// FlowKeyword is a keyword type such as string, mixed or the existential "*".
// Its kind is carried in Type.
type FlowKeyword struct {
	NodeBase
	Type Kind
}

type StringLiteralTypeAnnotation struct {
	NodeBase
	Value string
	Raw   string
}

type NumberLiteralTypeAnnotation struct {
	NodeBase
	Raw string
}

type BooleanLiteralTypeAnnotation struct {
	NodeBase
	Value bool
}

type BigIntLiteralTypeAnnotation struct {
	NodeBase
	Raw string
}

type NullableTypeAnnotation struct {
	NodeBase
	TypeAnnotation Node
}

type ArrayTypeAnnotation struct {
	NodeBase
	ElementType Node
}

type TupleTypeAnnotation struct {
	NodeBase
	Types []Node
}

type FunctionTypeAnnotation struct {
	NodeBase
	TypeParameters Node
	Params         []Node
	Rest           Node
	ReturnType     Node
}

// FunctionTypeParam has a nil Name when the parameter is anonymous.
type FunctionTypeParam struct {
	NodeBase
	Name           Node
	Optional       bool
	TypeAnnotation Node
}

// ObjectTypeAnnotation keeps members in source order.
type ObjectTypeAnnotation struct {
	NodeBase
	Members []Node
	Exact   bool
	Inexact bool
}

type ObjectTypeProperty struct {
	NodeBase
	Key      Node
	Value    Node
	Variance Node
	Optional bool
	Static   bool
	Method   bool
	// Accessor is "get" or "set" for accessor properties.
	Accessor string
}

type ObjectTypeSpreadProperty struct {
	NodeBase
	Argument Node
}

type ObjectTypeIndexer struct {
	NodeBase
	ID       Node
	Key      Node
	Value    Node
	Variance Node
	Static   bool
}

type ObjectTypeCallProperty struct {
	NodeBase
	Value  Node
	Static bool
}

type GenericTypeAnnotation struct {
	NodeBase
	ID             Node
	TypeParameters Node
}

type QualifiedTypeIdentifier struct {
	NodeBase
	Qualification Node
	ID            Node
}

type UnionTypeAnnotation struct {
	NodeBase
	Types []Node
}

type IntersectionTypeAnnotation struct {
	NodeBase
	Types []Node
}

type TypeofTypeAnnotation struct {
	NodeBase
	Argument Node
}

type IndexedAccessType struct {
	NodeBase
	ObjectType Node
	IndexType  Node
}

type TypeParameterDeclaration struct {
	NodeBase
	Params []Node
}

type TypeParameter struct {
	NodeBase
	Name     string
	Bound    Node
	Variance Node
	Default  Node
}

type TypeParameterInstantiation struct {
	NodeBase
	Params []Node
}

type TypeAlias struct {
	NodeBase
	ID             Node
	TypeParameters Node
	Right          Node
}

type OpaqueType struct {
	NodeBase
	ID             Node
	TypeParameters Node
	Supertype      Node
	Impltype       Node
}

type InterfaceDeclaration struct {
	NodeBase
	Declare        bool
	ID             Node
	TypeParameters Node
	Extends        []Node
	Body           Node
}

type InterfaceExtends struct {
	NodeBase
	ID             Node
	TypeParameters Node
}

type ClassImplements struct {
	NodeBase
	ID             Node
	TypeParameters Node
}

// DeclareVariable's ID is an Identifier carrying the type annotation.
type DeclareVariable struct {
	NodeBase
	DeclKind string
	ID       Node
}

// DeclareModule is "declare module 'm' { ... }". ID is a StringLiteral or an
// Identifier.
type DeclareModule struct {
	NodeBase
	ID   Node
	Body []Node
}

// DeclareModuleExports is "declare module.exports: T" inside a module
// declaration. TypeAnnotation is a TypeAnnotation.
type DeclareModuleExports struct {
	NodeBase
	TypeAnnotation Node
}

// DeclareFunction's ID is an Identifier annotated with a function type.
type DeclareFunction struct {
	NodeBase
	ID        Node
	Predicate Node
}

type DeclareClass struct {
	NodeBase
	ID             Node
	TypeParameters Node
	Extends        []Node
	Implements     []Node
	Body           Node
}

type DeclareTypeAlias struct {
	NodeBase
	ID             Node
	TypeParameters Node
	Right          Node
}

type DeclareOpaqueType struct {
	NodeBase
	ID             Node
	TypeParameters Node
	Supertype      Node
}

type DeclareExportDeclaration struct {
	NodeBase
	Default     bool
	Declaration Node
	Specifiers  []Node
	Source      Node
}

// TypeCastExpression is the parenthesized "(expr: T)" form.
type TypeCastExpression struct {
	NodeBase
	Expression     Node
	TypeAnnotation Node
}

// Variance is a "+" (read-only) or "-" (write-only) marker.
type Variance struct {
	NodeBase
	Plus bool
}

type InferredPredicate struct{ NodeBase }

type DeclaredPredicate struct {
	NodeBase
	Value Node
}

func (*TypeAnnotation) Kind() Kind               { return KindTypeAnnotation }
func (k *FlowKeyword) Kind() Kind                { return k.Type }
func (*StringLiteralTypeAnnotation) Kind() Kind  { return KindStringLiteralTypeAnnotation }
func (*NumberLiteralTypeAnnotation) Kind() Kind  { return KindNumberLiteralTypeAnnotation }
func (*BooleanLiteralTypeAnnotation) Kind() Kind { return KindBooleanLiteralTypeAnnotation }
func (*BigIntLiteralTypeAnnotation) Kind() Kind  { return KindBigIntLiteralTypeAnnotation }
func (*NullableTypeAnnotation) Kind() Kind       { return KindNullableTypeAnnotation }
func (*ArrayTypeAnnotation) Kind() Kind          { return KindArrayTypeAnnotation }
func (*TupleTypeAnnotation) Kind() Kind          { return KindTupleTypeAnnotation }
func (*FunctionTypeAnnotation) Kind() Kind       { return KindFunctionTypeAnnotation }
func (*FunctionTypeParam) Kind() Kind            { return KindFunctionTypeParam }
func (*ObjectTypeAnnotation) Kind() Kind         { return KindObjectTypeAnnotation }
func (*ObjectTypeProperty) Kind() Kind           { return KindObjectTypeProperty }
func (*ObjectTypeSpreadProperty) Kind() Kind     { return KindObjectTypeSpreadProperty }
func (*ObjectTypeIndexer) Kind() Kind            { return KindObjectTypeIndexer }
func (*ObjectTypeCallProperty) Kind() Kind       { return KindObjectTypeCallProperty }
func (*GenericTypeAnnotation) Kind() Kind        { return KindGenericTypeAnnotation }
func (*QualifiedTypeIdentifier) Kind() Kind      { return KindQualifiedTypeIdentifier }
func (*UnionTypeAnnotation) Kind() Kind          { return KindUnionTypeAnnotation }
func (*IntersectionTypeAnnotation) Kind() Kind   { return KindIntersectionTypeAnnotation }
func (*TypeofTypeAnnotation) Kind() Kind         { return KindTypeofTypeAnnotation }
func (*IndexedAccessType) Kind() Kind            { return KindIndexedAccessType }
func (*TypeParameterDeclaration) Kind() Kind     { return KindTypeParameterDeclaration }
func (*TypeParameter) Kind() Kind                { return KindTypeParameter }
func (*TypeParameterInstantiation) Kind() Kind   { return KindTypeParameterInstantiation }
func (*TypeAlias) Kind() Kind                    { return KindTypeAlias }
func (*OpaqueType) Kind() Kind                   { return KindOpaqueType }
func (*InterfaceDeclaration) Kind() Kind         { return KindInterfaceDeclaration }
func (*InterfaceExtends) Kind() Kind             { return KindInterfaceExtends }
func (*ClassImplements) Kind() Kind              { return KindClassImplements }
func (*DeclareVariable) Kind() Kind              { return KindDeclareVariable }
func (*DeclareFunction) Kind() Kind              { return KindDeclareFunction }
func (*DeclareClass) Kind() Kind                 { return KindDeclareClass }
func (*DeclareModule) Kind() Kind                { return KindDeclareModule }
func (*DeclareModuleExports) Kind() Kind         { return KindDeclareModuleExports }
func (*DeclareTypeAlias) Kind() Kind             { return KindDeclareTypeAlias }
func (*DeclareOpaqueType) Kind() Kind            { return KindDeclareOpaqueType }
func (*DeclareExportDeclaration) Kind() Kind     { return KindDeclareExportDeclaration }
func (*TypeCastExpression) Kind() Kind           { return KindTypeCastExpression }
func (*Variance) Kind() Kind                     { return KindVariance }
func (*InferredPredicate) Kind() Kind            { return KindInferredPredicate }
func (*DeclaredPredicate) Kind() Kind            { return KindDeclaredPredicate }
