package model

// Kind discriminates node variants. The set is closed: shared kinds are valid
// in both dialects, origin kinds only appear in freshly parsed Flow trees and
// target kinds are produced by the rewrite.
type Kind int

const (
	KindInvalid Kind = iota

	// statements and module items
	KindProgram
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindWithStatement
	KindReturnStatement
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement
	KindIfStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	// expressions and patterns
	KindIdentifier
	KindPrivateName
	KindStringLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTaggedTemplateExpression
	KindThisExpression
	KindSuper
	KindImport
	KindMetaProperty
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindObjectMethod
	KindSpreadElement
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSequenceExpression
	KindYieldExpression
	KindAwaitExpression
	KindParenthesizedExpression
	KindObjectPattern
	KindArrayPattern
	KindRestElement
	KindAssignmentPattern
	KindDecorator
	KindClassBody
	KindClassMethod
	KindClassProperty

	// JSX
	KindJSXElement
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXFragment
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXIdentifier
	KindJSXMemberExpression
	KindJSXNamespacedName
	KindJSXExpressionContainer
	KindJSXText

	originStart

	KindTypeAnnotation
	KindAnyTypeAnnotation
	KindMixedTypeAnnotation
	KindEmptyTypeAnnotation
	KindVoidTypeAnnotation
	KindNullLiteralTypeAnnotation
	KindStringTypeAnnotation
	KindNumberTypeAnnotation
	KindBooleanTypeAnnotation
	KindSymbolTypeAnnotation
	KindBigIntTypeAnnotation
	KindExistsTypeAnnotation
	KindThisTypeAnnotation
	KindStringLiteralTypeAnnotation
	KindNumberLiteralTypeAnnotation
	KindBooleanLiteralTypeAnnotation
	KindBigIntLiteralTypeAnnotation
	KindNullableTypeAnnotation
	KindArrayTypeAnnotation
	KindTupleTypeAnnotation
	KindFunctionTypeAnnotation
	KindFunctionTypeParam
	KindObjectTypeAnnotation
	KindObjectTypeProperty
	KindObjectTypeSpreadProperty
	KindObjectTypeIndexer
	KindObjectTypeCallProperty
	KindGenericTypeAnnotation
	KindQualifiedTypeIdentifier
	KindUnionTypeAnnotation
	KindIntersectionTypeAnnotation
	KindTypeofTypeAnnotation
	KindIndexedAccessType
	KindTypeParameterDeclaration
	KindTypeParameter
	KindTypeParameterInstantiation
	KindTypeAlias
	KindOpaqueType
	KindInterfaceDeclaration
	KindInterfaceExtends
	KindClassImplements
	KindDeclareVariable
	KindDeclareFunction
	KindDeclareClass
	KindDeclareTypeAlias
	KindDeclareOpaqueType
	KindDeclareExportDeclaration
	KindDeclareModule
	KindDeclareModuleExports
	KindTypeCastExpression
	KindVariance
	KindInferredPredicate
	KindDeclaredPredicate

	originEnd

	KindTSTypeAnnotation
	KindTSKeyword
	KindTSLiteralType
	KindTSUnionType
	KindTSIntersectionType
	KindTSArrayType
	KindTSTupleType
	KindTSFunctionType
	KindTSParenthesizedType
	KindTSTypeReference
	KindTSQualifiedName
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSMethodSignature
	KindTSIndexSignature
	KindTSCallSignatureDeclaration
	KindTSMappedType
	KindTSTypeOperator
	KindTSIndexedAccessType
	KindTSTypeQuery
	KindTSImportType
	KindTSTypeParameterDeclaration
	KindTSTypeParameter
	KindTSTypeParameterInstantiation
	KindTSTypeAliasDeclaration
	KindTSInterfaceDeclaration
	KindTSInterfaceBody
	KindTSExpressionWithTypeArguments
	KindTSAsExpression
	KindTSDeclareFunction
	KindTSModuleDeclaration
	KindTSExportAssignment

	kindCount
)

// Flavor tells which dialect a kind belongs to.
type Flavor int

const (
	Shared Flavor = iota
	Origin
	Target
)

func (f Flavor) String() string {
	switch f {
	case Origin:
		return "origin"
	case Target:
		return "target"
	default:
		return "shared"
	}
}

// Flavor reports the dialect of k.
func (k Kind) Flavor() Flavor {
	switch {
	case k > originStart && k < originEnd:
		return Origin
	case k > originEnd && k < kindCount:
		return Target
	default:
		return Shared
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := KindInvalid + 1; k < kindCount; k++ {
		if k == originStart || k == originEnd {
			continue
		}
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Invalid"
}

var kindNames = map[Kind]string{
	KindProgram:                  "Program",
	KindExpressionStatement:      "ExpressionStatement",
	KindBlockStatement:           "BlockStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindDebuggerStatement:        "DebuggerStatement",
	KindWithStatement:            "WithStatement",
	KindReturnStatement:          "ReturnStatement",
	KindLabeledStatement:         "LabeledStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindIfStatement:              "IfStatement",
	KindSwitchStatement:          "SwitchStatement",
	KindSwitchCase:               "SwitchCase",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindCatchClause:              "CatchClause",
	KindWhileStatement:           "WhileStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindForStatement:             "ForStatement",
	KindForInStatement:           "ForInStatement",
	KindForOfStatement:           "ForOfStatement",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindClassDeclaration:         "ClassDeclaration",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",

	KindIdentifier:               "Identifier",
	KindPrivateName:              "PrivateName",
	KindStringLiteral:            "StringLiteral",
	KindNumericLiteral:           "NumericLiteral",
	KindBigIntLiteral:            "BigIntLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNullLiteral:              "NullLiteral",
	KindRegExpLiteral:            "RegExpLiteral",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindThisExpression:           "ThisExpression",
	KindSuper:                    "Super",
	KindImport:                   "Import",
	KindMetaProperty:             "MetaProperty",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindObjectProperty:           "ObjectProperty",
	KindObjectMethod:             "ObjectMethod",
	KindSpreadElement:            "SpreadElement",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindParenthesizedExpression:  "ParenthesizedExpression",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindRestElement:              "RestElement",
	KindAssignmentPattern:        "AssignmentPattern",
	KindDecorator:                "Decorator",
	KindClassBody:                "ClassBody",
	KindClassMethod:              "ClassMethod",
	KindClassProperty:            "ClassProperty",

	KindJSXElement:             "JSXElement",
	KindJSXOpeningElement:      "JSXOpeningElement",
	KindJSXClosingElement:      "JSXClosingElement",
	KindJSXFragment:            "JSXFragment",
	KindJSXAttribute:           "JSXAttribute",
	KindJSXSpreadAttribute:     "JSXSpreadAttribute",
	KindJSXIdentifier:          "JSXIdentifier",
	KindJSXMemberExpression:    "JSXMemberExpression",
	KindJSXNamespacedName:      "JSXNamespacedName",
	KindJSXExpressionContainer: "JSXExpressionContainer",
	KindJSXText:                "JSXText",

	KindTypeAnnotation:               "TypeAnnotation",
	KindAnyTypeAnnotation:            "AnyTypeAnnotation",
	KindMixedTypeAnnotation:          "MixedTypeAnnotation",
	KindEmptyTypeAnnotation:          "EmptyTypeAnnotation",
	KindVoidTypeAnnotation:           "VoidTypeAnnotation",
	KindNullLiteralTypeAnnotation:    "NullLiteralTypeAnnotation",
	KindStringTypeAnnotation:         "StringTypeAnnotation",
	KindNumberTypeAnnotation:         "NumberTypeAnnotation",
	KindBooleanTypeAnnotation:        "BooleanTypeAnnotation",
	KindSymbolTypeAnnotation:         "SymbolTypeAnnotation",
	KindBigIntTypeAnnotation:         "BigIntTypeAnnotation",
	KindExistsTypeAnnotation:         "ExistsTypeAnnotation",
	KindThisTypeAnnotation:           "ThisTypeAnnotation",
	KindStringLiteralTypeAnnotation:  "StringLiteralTypeAnnotation",
	KindNumberLiteralTypeAnnotation:  "NumberLiteralTypeAnnotation",
	KindBooleanLiteralTypeAnnotation: "BooleanLiteralTypeAnnotation",
	KindBigIntLiteralTypeAnnotation:  "BigIntLiteralTypeAnnotation",
	KindNullableTypeAnnotation:       "NullableTypeAnnotation",
	KindArrayTypeAnnotation:          "ArrayTypeAnnotation",
	KindTupleTypeAnnotation:          "TupleTypeAnnotation",
	KindFunctionTypeAnnotation:       "FunctionTypeAnnotation",
	KindFunctionTypeParam:            "FunctionTypeParam",
	KindObjectTypeAnnotation:         "ObjectTypeAnnotation",
	KindObjectTypeProperty:           "ObjectTypeProperty",
	KindObjectTypeSpreadProperty:     "ObjectTypeSpreadProperty",
	KindObjectTypeIndexer:            "ObjectTypeIndexer",
	KindObjectTypeCallProperty:       "ObjectTypeCallProperty",
	KindGenericTypeAnnotation:        "GenericTypeAnnotation",
	KindQualifiedTypeIdentifier:      "QualifiedTypeIdentifier",
	KindUnionTypeAnnotation:          "UnionTypeAnnotation",
	KindIntersectionTypeAnnotation:   "IntersectionTypeAnnotation",
	KindTypeofTypeAnnotation:         "TypeofTypeAnnotation",
	KindIndexedAccessType:            "IndexedAccessType",
	KindTypeParameterDeclaration:     "TypeParameterDeclaration",
	KindTypeParameter:                "TypeParameter",
	KindTypeParameterInstantiation:   "TypeParameterInstantiation",
	KindTypeAlias:                    "TypeAlias",
	KindOpaqueType:                   "OpaqueType",
	KindInterfaceDeclaration:         "InterfaceDeclaration",
	KindInterfaceExtends:             "InterfaceExtends",
	KindClassImplements:              "ClassImplements",
	KindDeclareVariable:              "DeclareVariable",
	KindDeclareFunction:              "DeclareFunction",
	KindDeclareClass:                 "DeclareClass",
	KindDeclareTypeAlias:             "DeclareTypeAlias",
	KindDeclareOpaqueType:            "DeclareOpaqueType",
	KindDeclareExportDeclaration:     "DeclareExportDeclaration",
	KindDeclareModule:                "DeclareModule",
	KindDeclareModuleExports:         "DeclareModuleExports",
	KindTypeCastExpression:           "TypeCastExpression",
	KindVariance:                     "Variance",
	KindInferredPredicate:            "InferredPredicate",
	KindDeclaredPredicate:            "DeclaredPredicate",

	KindTSTypeAnnotation:              "TSTypeAnnotation",
	KindTSKeyword:                     "TSKeyword",
	KindTSLiteralType:                 "TSLiteralType",
	KindTSUnionType:                   "TSUnionType",
	KindTSIntersectionType:            "TSIntersectionType",
	KindTSArrayType:                   "TSArrayType",
	KindTSTupleType:                   "TSTupleType",
	KindTSFunctionType:                "TSFunctionType",
	KindTSParenthesizedType:           "TSParenthesizedType",
	KindTSTypeReference:               "TSTypeReference",
	KindTSQualifiedName:               "TSQualifiedName",
	KindTSTypeLiteral:                 "TSTypeLiteral",
	KindTSPropertySignature:           "TSPropertySignature",
	KindTSMethodSignature:             "TSMethodSignature",
	KindTSIndexSignature:              "TSIndexSignature",
	KindTSCallSignatureDeclaration:    "TSCallSignatureDeclaration",
	KindTSMappedType:                  "TSMappedType",
	KindTSTypeOperator:                "TSTypeOperator",
	KindTSIndexedAccessType:           "TSIndexedAccessType",
	KindTSTypeQuery:                   "TSTypeQuery",
	KindTSImportType:                  "TSImportType",
	KindTSTypeParameterDeclaration:    "TSTypeParameterDeclaration",
	KindTSTypeParameter:               "TSTypeParameter",
	KindTSTypeParameterInstantiation:  "TSTypeParameterInstantiation",
	KindTSTypeAliasDeclaration:        "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:        "TSInterfaceDeclaration",
	KindTSInterfaceBody:               "TSInterfaceBody",
	KindTSExpressionWithTypeArguments: "TSExpressionWithTypeArguments",
	KindTSAsExpression:                "TSAsExpression",
	KindTSDeclareFunction:             "TSDeclareFunction",
	KindTSModuleDeclaration:           "TSModuleDeclaration",
	KindTSExportAssignment:            "TSExportAssignment",
}
