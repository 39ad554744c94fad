package model

type Program struct {
	NodeBase
	// Interpreter is the "#!" line without its prefix, if present.
	Interpreter string
	Body        []Node
}

type ExpressionStatement struct {
	NodeBase
	Expression Node
}

type BlockStatement struct {
	NodeBase
	Body []Node
}

type EmptyStatement struct{ NodeBase }

type DebuggerStatement struct{ NodeBase }

type WithStatement struct {
	NodeBase
	Object Node
	Body   Node
}

type ReturnStatement struct {
	NodeBase
	Argument Node
}

type LabeledStatement struct {
	NodeBase
	Label Node
	Body  Node
}

type BreakStatement struct {
	NodeBase
	Label Node
}

type ContinueStatement struct {
	NodeBase
	Label Node
}

type IfStatement struct {
	NodeBase
	Test       Node
	Consequent Node
	Alternate  Node
}

type SwitchStatement struct {
	NodeBase
	Discriminant Node
	Cases        []Node
}

// SwitchCase is a case clause; Test is nil for "default".
type SwitchCase struct {
	NodeBase
	Test       Node
	Consequent []Node
}

type ThrowStatement struct {
	NodeBase
	Argument Node
}

type TryStatement struct {
	NodeBase
	Block     Node
	Handler   Node
	Finalizer Node
}

type CatchClause struct {
	NodeBase
	Param Node
	Body  Node
}

type WhileStatement struct {
	NodeBase
	Test Node
	Body Node
}

type DoWhileStatement struct {
	NodeBase
	Body Node
	Test Node
}

type ForStatement struct {
	NodeBase
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

type ForInStatement struct {
	NodeBase
	Left  Node
	Right Node
	Body  Node
}

type ForOfStatement struct {
	NodeBase
	Await bool
	Left  Node
	Right Node
	Body  Node
}

// VariableDeclaration is a var/let/const statement. Declare marks the ambient
// "declare var x: T" form.
type VariableDeclaration struct {
	NodeBase
	Declare      bool
	DeclKind     string
	Declarations []Node
}

type VariableDeclarator struct {
	NodeBase
	ID   Node
	Init Node
}

// Function holds what function declarations, expressions, object and class
// methods have in common.
type Function struct {
	ID             Node
	Async          bool
	Generator      bool
	TypeParameters Node
	Params         []Node
	ReturnType     Node
	Predicate      Node
	Body           Node
}

type FunctionDeclaration struct {
	NodeBase
	Function
}

// Class holds what class declarations and class expressions have in common.
// For a lowered ambient class Body may be a TSTypeLiteral.
type Class struct {
	Decorators          []Node
	ID                  Node
	TypeParameters      Node
	SuperClass          Node
	SuperTypeParameters Node
	Implements          []Node
	Body                Node
}

type ClassDeclaration struct {
	NodeBase
	Class
	Declare  bool
	Abstract bool
}

type ImportDeclaration struct {
	NodeBase
	// ImportKind is "value", "type" or "typeof".
	ImportKind string
	Specifiers []Node
	Source     Node
}

type ImportSpecifier struct {
	NodeBase
	ImportKind string
	Imported   Node
	Local      Node
}

type ImportDefaultSpecifier struct {
	NodeBase
	Local Node
}

type ImportNamespaceSpecifier struct {
	NodeBase
	Local Node
}

type ExportNamedDeclaration struct {
	NodeBase
	// ExportKind is "value" or "type".
	ExportKind  string
	Declaration Node
	Specifiers  []Node
	Source      Node
}

type ExportSpecifier struct {
	NodeBase
	Local    Node
	Exported Node
}

type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node
}

type ExportAllDeclaration struct {
	NodeBase
	ExportKind string
	Exported   Node
	Source     Node
}

func (*Program) Kind() Kind                  { return KindProgram }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind           { return KindEmptyStatement }
func (*DebuggerStatement) Kind() Kind        { return KindDebuggerStatement }
func (*WithStatement) Kind() Kind            { return KindWithStatement }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*LabeledStatement) Kind() Kind         { return KindLabeledStatement }
func (*BreakStatement) Kind() Kind           { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind        { return KindContinueStatement }
func (*IfStatement) Kind() Kind              { return KindIfStatement }
func (*SwitchStatement) Kind() Kind          { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind               { return KindSwitchCase }
func (*ThrowStatement) Kind() Kind           { return KindThrowStatement }
func (*TryStatement) Kind() Kind             { return KindTryStatement }
func (*CatchClause) Kind() Kind              { return KindCatchClause }
func (*WhileStatement) Kind() Kind           { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind         { return KindDoWhileStatement }
func (*ForStatement) Kind() Kind             { return KindForStatement }
func (*ForInStatement) Kind() Kind           { return KindForInStatement }
func (*ForOfStatement) Kind() Kind           { return KindForOfStatement }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*ClassDeclaration) Kind() Kind         { return KindClassDeclaration }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
