package model

type ClassBody struct {
	NodeBase
	Body []Node
}

type ClassMethod struct {
	NodeBase
	Function
	// Method is "constructor", "method", "get" or "set".
	Method     string
	Decorators []Node
	Key        Node
	Computed   bool
	Static     bool
	Optional   bool
}

type ClassProperty struct {
	NodeBase
	Decorators     []Node
	Key            Node
	Value          Node
	TypeAnnotation Node
	Variance       Node
	Computed       bool
	Static         bool
	Declare        bool
	Readonly       bool
	Optional       bool
}

func (*ClassBody) Kind() Kind     { return KindClassBody }
func (*ClassMethod) Kind() Kind   { return KindClassMethod }
func (*ClassProperty) Kind() Kind { return KindClassProperty }
