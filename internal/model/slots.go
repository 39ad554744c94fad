package model

// Slots receives the child slots of a node in document order. Field is called
// for single-child slots (the slot may hold nil), List for child lists.
type Slots interface {
	Field(slot *Node)
	List(slot *[]Node)
}

// VisitSlots hands every child slot of n to s in document order.
func VisitSlots(n Node, s Slots) {
	switch n := n.(type) {
	case *Program:
		s.List(&n.Body)
	case *ExpressionStatement:
		s.Field(&n.Expression)
	case *BlockStatement:
		s.List(&n.Body)
	case *WithStatement:
		s.Field(&n.Object)
		s.Field(&n.Body)
	case *ReturnStatement:
		s.Field(&n.Argument)
	case *LabeledStatement:
		s.Field(&n.Label)
		s.Field(&n.Body)
	case *BreakStatement:
		s.Field(&n.Label)
	case *ContinueStatement:
		s.Field(&n.Label)
	case *IfStatement:
		s.Field(&n.Test)
		s.Field(&n.Consequent)
		s.Field(&n.Alternate)
	case *SwitchStatement:
		s.Field(&n.Discriminant)
		s.List(&n.Cases)
	case *SwitchCase:
		s.Field(&n.Test)
		s.List(&n.Consequent)
	case *ThrowStatement:
		s.Field(&n.Argument)
	case *TryStatement:
		s.Field(&n.Block)
		s.Field(&n.Handler)
		s.Field(&n.Finalizer)
	case *CatchClause:
		s.Field(&n.Param)
		s.Field(&n.Body)
	case *WhileStatement:
		s.Field(&n.Test)
		s.Field(&n.Body)
	case *DoWhileStatement:
		s.Field(&n.Body)
		s.Field(&n.Test)
	case *ForStatement:
		s.Field(&n.Init)
		s.Field(&n.Test)
		s.Field(&n.Update)
		s.Field(&n.Body)
	case *ForInStatement:
		s.Field(&n.Left)
		s.Field(&n.Right)
		s.Field(&n.Body)
	case *ForOfStatement:
		s.Field(&n.Left)
		s.Field(&n.Right)
		s.Field(&n.Body)
	case *VariableDeclaration:
		s.List(&n.Declarations)
	case *VariableDeclarator:
		s.Field(&n.ID)
		s.Field(&n.Init)
	case *FunctionDeclaration:
		functionSlots(&n.Function, s)
	case *ClassDeclaration:
		classSlots(&n.Class, s)
	case *ImportDeclaration:
		s.List(&n.Specifiers)
		s.Field(&n.Source)
	case *ImportSpecifier:
		s.Field(&n.Imported)
		s.Field(&n.Local)
	case *ImportDefaultSpecifier:
		s.Field(&n.Local)
	case *ImportNamespaceSpecifier:
		s.Field(&n.Local)
	case *ExportNamedDeclaration:
		s.Field(&n.Declaration)
		s.List(&n.Specifiers)
		s.Field(&n.Source)
	case *ExportSpecifier:
		s.Field(&n.Local)
		s.Field(&n.Exported)
	case *ExportDefaultDeclaration:
		s.Field(&n.Declaration)
	case *ExportAllDeclaration:
		s.Field(&n.Exported)
		s.Field(&n.Source)

	case *Identifier:
		s.Field(&n.TypeAnnotation)
	case *TemplateLiteral:
		s.List(&n.Expressions)
	case *TaggedTemplateExpression:
		s.Field(&n.Tag)
		s.Field(&n.TypeArguments)
		s.Field(&n.Quasi)
	case *ArrayExpression:
		s.List(&n.Elements)
	case *ObjectExpression:
		s.List(&n.Properties)
	case *ObjectProperty:
		s.Field(&n.Key)
		s.Field(&n.Value)
	case *ObjectMethod:
		s.Field(&n.Key)
		functionSlots(&n.Function, s)
	case *SpreadElement:
		s.Field(&n.Argument)
	case *FunctionExpression:
		functionSlots(&n.Function, s)
	case *ArrowFunctionExpression:
		functionSlots(&n.Function, s)
	case *ClassExpression:
		classSlots(&n.Class, s)
	case *UnaryExpression:
		s.Field(&n.Argument)
	case *UpdateExpression:
		s.Field(&n.Argument)
	case *BinaryExpression:
		s.Field(&n.Left)
		s.Field(&n.Right)
	case *AssignmentExpression:
		s.Field(&n.Left)
		s.Field(&n.Right)
	case *ConditionalExpression:
		s.Field(&n.Test)
		s.Field(&n.Consequent)
		s.Field(&n.Alternate)
	case *CallExpression:
		s.Field(&n.Callee)
		s.Field(&n.TypeArguments)
		s.List(&n.Arguments)
	case *NewExpression:
		s.Field(&n.Callee)
		s.Field(&n.TypeArguments)
		s.List(&n.Arguments)
	case *MemberExpression:
		s.Field(&n.Object)
		s.Field(&n.Property)
	case *SequenceExpression:
		s.List(&n.Expressions)
	case *YieldExpression:
		s.Field(&n.Argument)
	case *AwaitExpression:
		s.Field(&n.Argument)
	case *ParenthesizedExpression:
		s.Field(&n.Expression)
	case *ObjectPattern:
		s.List(&n.Properties)
		s.Field(&n.TypeAnnotation)
	case *ArrayPattern:
		s.List(&n.Elements)
		s.Field(&n.TypeAnnotation)
	case *RestElement:
		s.Field(&n.Argument)
		s.Field(&n.TypeAnnotation)
	case *AssignmentPattern:
		s.Field(&n.Left)
		s.Field(&n.Right)
	case *Decorator:
		s.Field(&n.Expression)
	case *ClassBody:
		s.List(&n.Body)
	case *ClassMethod:
		s.List(&n.Decorators)
		s.Field(&n.Key)
		functionSlots(&n.Function, s)
	case *ClassProperty:
		s.List(&n.Decorators)
		s.Field(&n.Key)
		s.Field(&n.Variance)
		s.Field(&n.TypeAnnotation)
		s.Field(&n.Value)

	case *JSXElement:
		s.Field(&n.Opening)
		s.List(&n.Children)
		s.Field(&n.Closing)
	case *JSXOpeningElement:
		s.Field(&n.Name)
		s.Field(&n.TypeArguments)
		s.List(&n.Attributes)
	case *JSXClosingElement:
		s.Field(&n.Name)
	case *JSXFragment:
		s.List(&n.Children)
	case *JSXAttribute:
		s.Field(&n.Name)
		s.Field(&n.Value)
	case *JSXSpreadAttribute:
		s.Field(&n.Argument)
	case *JSXMemberExpression:
		s.Field(&n.Object)
		s.Field(&n.Property)
	case *JSXNamespacedName:
		s.Field(&n.Namespace)
		s.Field(&n.Name)
	case *JSXExpressionContainer:
		s.Field(&n.Expression)

	case *TypeAnnotation:
		s.Field(&n.TypeAnnotation)
	case *NullableTypeAnnotation:
		s.Field(&n.TypeAnnotation)
	case *ArrayTypeAnnotation:
		s.Field(&n.ElementType)
	case *TupleTypeAnnotation:
		s.List(&n.Types)
	case *FunctionTypeAnnotation:
		s.Field(&n.TypeParameters)
		s.List(&n.Params)
		s.Field(&n.Rest)
		s.Field(&n.ReturnType)
	case *FunctionTypeParam:
		s.Field(&n.Name)
		s.Field(&n.TypeAnnotation)
	case *ObjectTypeAnnotation:
		s.List(&n.Members)
	case *ObjectTypeProperty:
		s.Field(&n.Variance)
		s.Field(&n.Key)
		s.Field(&n.Value)
	case *ObjectTypeSpreadProperty:
		s.Field(&n.Argument)
	case *ObjectTypeIndexer:
		s.Field(&n.Variance)
		s.Field(&n.ID)
		s.Field(&n.Key)
		s.Field(&n.Value)
	case *ObjectTypeCallProperty:
		s.Field(&n.Value)
	case *GenericTypeAnnotation:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
	case *QualifiedTypeIdentifier:
		s.Field(&n.Qualification)
		s.Field(&n.ID)
	case *UnionTypeAnnotation:
		s.List(&n.Types)
	case *IntersectionTypeAnnotation:
		s.List(&n.Types)
	case *TypeofTypeAnnotation:
		s.Field(&n.Argument)
	case *IndexedAccessType:
		s.Field(&n.ObjectType)
		s.Field(&n.IndexType)
	case *TypeParameterDeclaration:
		s.List(&n.Params)
	case *TypeParameter:
		s.Field(&n.Variance)
		s.Field(&n.Bound)
		s.Field(&n.Default)
	case *TypeParameterInstantiation:
		s.List(&n.Params)
	case *TypeAlias:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.Field(&n.Right)
	case *OpaqueType:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.Field(&n.Supertype)
		s.Field(&n.Impltype)
	case *InterfaceDeclaration:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.List(&n.Extends)
		s.Field(&n.Body)
	case *InterfaceExtends:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
	case *ClassImplements:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
	case *DeclareVariable:
		s.Field(&n.ID)
	case *DeclareFunction:
		s.Field(&n.ID)
		s.Field(&n.Predicate)
	case *DeclareClass:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.List(&n.Extends)
		s.List(&n.Implements)
		s.Field(&n.Body)
	case *DeclareTypeAlias:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.Field(&n.Right)
	case *DeclareOpaqueType:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.Field(&n.Supertype)
	case *DeclareModule:
		s.Field(&n.ID)
		s.List(&n.Body)
	case *DeclareModuleExports:
		s.Field(&n.TypeAnnotation)
	case *DeclareExportDeclaration:
		s.Field(&n.Declaration)
		s.List(&n.Specifiers)
		s.Field(&n.Source)
	case *TypeCastExpression:
		s.Field(&n.Expression)
		s.Field(&n.TypeAnnotation)
	case *DeclaredPredicate:
		s.Field(&n.Value)

	case *TSTypeAnnotation:
		s.Field(&n.TypeAnnotation)
	case *TSLiteralType:
		s.Field(&n.Literal)
	case *TSUnionType:
		s.List(&n.Types)
	case *TSIntersectionType:
		s.List(&n.Types)
	case *TSArrayType:
		s.Field(&n.ElementType)
	case *TSTupleType:
		s.List(&n.ElementTypes)
	case *TSFunctionType:
		s.Field(&n.TypeParameters)
		s.List(&n.Parameters)
		s.Field(&n.ReturnType)
	case *TSParenthesizedType:
		s.Field(&n.TypeAnnotation)
	case *TSTypeReference:
		s.Field(&n.TypeName)
		s.Field(&n.TypeParameters)
	case *TSQualifiedName:
		s.Field(&n.Left)
		s.Field(&n.Right)
	case *TSTypeLiteral:
		s.List(&n.Members)
	case *TSPropertySignature:
		s.Field(&n.Key)
		s.Field(&n.TypeAnnotation)
	case *TSMethodSignature:
		s.Field(&n.Key)
		s.Field(&n.TypeParameters)
		s.List(&n.Parameters)
		s.Field(&n.TypeAnnotation)
	case *TSIndexSignature:
		s.List(&n.Parameters)
		s.Field(&n.TypeAnnotation)
	case *TSCallSignatureDeclaration:
		s.Field(&n.TypeParameters)
		s.List(&n.Parameters)
		s.Field(&n.TypeAnnotation)
	case *TSMappedType:
		s.Field(&n.TypeParameter)
		s.Field(&n.TypeAnnotation)
	case *TSTypeOperator:
		s.Field(&n.TypeAnnotation)
	case *TSIndexedAccessType:
		s.Field(&n.ObjectType)
		s.Field(&n.IndexType)
	case *TSTypeQuery:
		s.Field(&n.ExprName)
	case *TSImportType:
		s.Field(&n.Argument)
		s.Field(&n.Qualifier)
	case *TSTypeParameterDeclaration:
		s.List(&n.Params)
	case *TSTypeParameter:
		s.Field(&n.Constraint)
		s.Field(&n.Default)
	case *TSTypeParameterInstantiation:
		s.List(&n.Params)
	case *TSTypeAliasDeclaration:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.Field(&n.TypeAnnotation)
	case *TSInterfaceDeclaration:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.List(&n.Extends)
		s.Field(&n.Body)
	case *TSInterfaceBody:
		s.List(&n.Body)
	case *TSExpressionWithTypeArguments:
		s.Field(&n.Expression)
		s.Field(&n.TypeParameters)
	case *TSAsExpression:
		s.Field(&n.Expression)
		s.Field(&n.TypeAnnotation)
	case *TSModuleDeclaration:
		s.Field(&n.ID)
		s.List(&n.Body)
	case *TSExportAssignment:
		s.Field(&n.Expression)
	case *TSDeclareFunction:
		s.Field(&n.ID)
		s.Field(&n.TypeParameters)
		s.List(&n.Params)
		s.Field(&n.ReturnType)
	}
}

func functionSlots(f *Function, s Slots) {
	s.Field(&f.ID)
	s.Field(&f.TypeParameters)
	s.List(&f.Params)
	s.Field(&f.ReturnType)
	s.Field(&f.Predicate)
	s.Field(&f.Body)
}

func classSlots(c *Class, s Slots) {
	s.List(&c.Decorators)
	s.Field(&c.ID)
	s.Field(&c.TypeParameters)
	s.Field(&c.SuperClass)
	s.Field(&c.SuperTypeParameters)
	s.List(&c.Implements)
	s.Field(&c.Body)
}
