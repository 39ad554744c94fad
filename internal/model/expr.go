package model

// Identifier is a name in expression, pattern or parameter position. Patterns
// and parameters may carry a type annotation and an optional marker.
type Identifier struct {
	NodeBase
	Name           string
	Optional       bool
	TypeAnnotation Node
}

type PrivateName struct {
	NodeBase
	Name string
}

// StringLiteral keeps the raw source form (quotes included) next to the
// cooked value. Raw is empty for synthesized literals.
type StringLiteral struct {
	NodeBase
	Value string
	Raw   string
}

type NumericLiteral struct {
	NodeBase
	Raw string
}

type BigIntLiteral struct {
	NodeBase
	Raw string
}

type BooleanLiteral struct {
	NodeBase
	Value bool
}

type NullLiteral struct{ NodeBase }

type RegExpLiteral struct {
	NodeBase
	Pattern string
	Flags   string
}

// TemplateLiteral holds raw quasis; len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	NodeBase
	Quasis      []string
	Expressions []Node
}

type TaggedTemplateExpression struct {
	NodeBase
	Tag           Node
	TypeArguments Node
	Quasi         Node
}

type ThisExpression struct{ NodeBase }

type Super struct{ NodeBase }

// Import is the callee of a dynamic import() call.
type Import struct{ NodeBase }

type MetaProperty struct {
	NodeBase
	Meta     string
	Property string
}

// ArrayExpression elements may be nil for holes.
type ArrayExpression struct {
	NodeBase
	Elements []Node
}

type ObjectExpression struct {
	NodeBase
	Properties []Node
}

type ObjectProperty struct {
	NodeBase
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
}

type ObjectMethod struct {
	NodeBase
	Function
	// Method is "method", "get" or "set".
	Method   string
	Key      Node
	Computed bool
}

type SpreadElement struct {
	NodeBase
	Argument Node
}

type FunctionExpression struct {
	NodeBase
	Function
}

// ArrowFunctionExpression bodies are either a BlockStatement or an expression.
// Parens records whether a single parameter was parenthesized in the source.
type ArrowFunctionExpression struct {
	NodeBase
	Function
	Parens bool
}

type ClassExpression struct {
	NodeBase
	Class
}

type UnaryExpression struct {
	NodeBase
	Operator string
	Argument Node
}

type UpdateExpression struct {
	NodeBase
	Operator string
	Prefix   bool
	Argument Node
}

// BinaryExpression covers arithmetic, relational and logical operators.
type BinaryExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

type AssignmentExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Node
}

type ConditionalExpression struct {
	NodeBase
	Test       Node
	Consequent Node
	Alternate  Node
}

type CallExpression struct {
	NodeBase
	Callee        Node
	TypeArguments Node
	Arguments     []Node
	Optional      bool
}

type NewExpression struct {
	NodeBase
	Callee        Node
	TypeArguments Node
	Arguments     []Node
}

type MemberExpression struct {
	NodeBase
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

type SequenceExpression struct {
	NodeBase
	Expressions []Node
}

type YieldExpression struct {
	NodeBase
	Delegate bool
	Argument Node
}

type AwaitExpression struct {
	NodeBase
	Argument Node
}

// ParenthesizedExpression keeps source parentheses so that printing never
// has to reason about operator precedence.
type ParenthesizedExpression struct {
	NodeBase
	Expression Node
}

type ObjectPattern struct {
	NodeBase
	Properties     []Node
	TypeAnnotation Node
}

// ArrayPattern elements may be nil for holes.
type ArrayPattern struct {
	NodeBase
	Elements       []Node
	TypeAnnotation Node
}

type RestElement struct {
	NodeBase
	Argument       Node
	TypeAnnotation Node
}

type AssignmentPattern struct {
	NodeBase
	Left  Node
	Right Node
}

type Decorator struct {
	NodeBase
	Expression Node
}

func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*PrivateName) Kind() Kind              { return KindPrivateName }
func (*StringLiteral) Kind() Kind            { return KindStringLiteral }
func (*NumericLiteral) Kind() Kind           { return KindNumericLiteral }
func (*BigIntLiteral) Kind() Kind            { return KindBigIntLiteral }
func (*BooleanLiteral) Kind() Kind           { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind              { return KindNullLiteral }
func (*RegExpLiteral) Kind() Kind            { return KindRegExpLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*Super) Kind() Kind                    { return KindSuper }
func (*Import) Kind() Kind                   { return KindImport }
func (*MetaProperty) Kind() Kind             { return KindMetaProperty }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*ObjectProperty) Kind() Kind           { return KindObjectProperty }
func (*ObjectMethod) Kind() Kind             { return KindObjectMethod }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*ClassExpression) Kind() Kind          { return KindClassExpression }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*SequenceExpression) Kind() Kind       { return KindSequenceExpression }
func (*YieldExpression) Kind() Kind          { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind          { return KindAwaitExpression }
func (*ParenthesizedExpression) Kind() Kind  { return KindParenthesizedExpression }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*Decorator) Kind() Kind                { return KindDecorator }
