package model

type JSXElement struct {
	NodeBase
	Opening  Node
	Children []Node
	Closing  Node
}

type JSXOpeningElement struct {
	NodeBase
	Name          Node
	TypeArguments Node
	Attributes    []Node
	SelfClosing   bool
}

type JSXClosingElement struct {
	NodeBase
	Name Node
}

type JSXFragment struct {
	NodeBase
	Children []Node
}

type JSXAttribute struct {
	NodeBase
	Name  Node
	Value Node
}

type JSXSpreadAttribute struct {
	NodeBase
	Argument Node
}

type JSXIdentifier struct {
	NodeBase
	Name string
}

type JSXMemberExpression struct {
	NodeBase
	Object   Node
	Property Node
}

type JSXNamespacedName struct {
	NodeBase
	Namespace Node
	Name      Node
}

// JSXExpressionContainer with a nil Expression is an empty "{}" child,
// usually holding only comments.
type JSXExpressionContainer struct {
	NodeBase
	Expression Node
}

type JSXText struct {
	NodeBase
	Raw string
}

func (*JSXElement) Kind() Kind             { return KindJSXElement }
func (*JSXOpeningElement) Kind() Kind      { return KindJSXOpeningElement }
func (*JSXClosingElement) Kind() Kind      { return KindJSXClosingElement }
func (*JSXFragment) Kind() Kind            { return KindJSXFragment }
func (*JSXAttribute) Kind() Kind           { return KindJSXAttribute }
func (*JSXSpreadAttribute) Kind() Kind     { return KindJSXSpreadAttribute }
func (*JSXIdentifier) Kind() Kind          { return KindJSXIdentifier }
func (*JSXMemberExpression) Kind() Kind    { return KindJSXMemberExpression }
func (*JSXNamespacedName) Kind() Kind      { return KindJSXNamespacedName }
func (*JSXExpressionContainer) Kind() Kind { return KindJSXExpressionContainer }
func (*JSXText) Kind() Kind                { return KindJSXText }
