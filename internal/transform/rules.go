package transform

import (
	"github.com/cmmoran/flowts/internal/model"
)

// rules maps each kind to its handlers. Kinds without an entry are left
// untouched and only have their children visited.
var rules map[model.Kind]Rule

// consumed lists origin kinds without a rule of their own: the rule of the
// parent removes or replaces them.
var consumed = map[model.Kind]bool{
	model.KindObjectTypeSpreadProperty: true,
	model.KindVariance:                 true,
	model.KindInferredPredicate:        true,
	model.KindDeclaredPredicate:        true,
}

func init() {
	rules = map[model.Kind]Rule{
		model.KindProgram: {Enter: enterProgram, Exit: exitProgram},

		// keywords and literals
		model.KindAnyTypeAnnotation:            {Exit: exitKeyword},
		model.KindMixedTypeAnnotation:          {Exit: exitKeyword},
		model.KindEmptyTypeAnnotation:          {Exit: exitKeyword},
		model.KindVoidTypeAnnotation:           {Exit: exitKeyword},
		model.KindNullLiteralTypeAnnotation:    {Exit: exitKeyword},
		model.KindStringTypeAnnotation:         {Exit: exitKeyword},
		model.KindNumberTypeAnnotation:         {Exit: exitKeyword},
		model.KindBooleanTypeAnnotation:        {Exit: exitKeyword},
		model.KindSymbolTypeAnnotation:         {Exit: exitKeyword},
		model.KindBigIntTypeAnnotation:         {Exit: exitKeyword},
		model.KindExistsTypeAnnotation:         {Exit: exitKeyword},
		model.KindThisTypeAnnotation:           {Exit: exitKeyword},
		model.KindStringLiteralTypeAnnotation:  {Exit: exitLiteralType},
		model.KindNumberLiteralTypeAnnotation:  {Exit: exitLiteralType},
		model.KindBooleanLiteralTypeAnnotation: {Exit: exitLiteralType},
		model.KindBigIntLiteralTypeAnnotation:  {Exit: exitLiteralType},

		// structural types
		model.KindTypeAnnotation:             {Exit: exitTypeAnnotation},
		model.KindNullableTypeAnnotation:     {Exit: exitNullable},
		model.KindArrayTypeAnnotation:        {Exit: exitArray},
		model.KindTupleTypeAnnotation:        {Exit: exitTuple},
		model.KindUnionTypeAnnotation:        {Exit: exitUnion},
		model.KindIntersectionTypeAnnotation: {Exit: exitIntersection},
		model.KindIndexedAccessType:          {Exit: exitIndexedAccess},
		model.KindTypeofTypeAnnotation:       {Enter: enterTypeof},
		model.KindFunctionTypeAnnotation:     {Exit: exitFunctionType},
		model.KindFunctionTypeParam:          {Exit: exitFunctionTypeParam},
		model.KindTypeParameterDeclaration:   {Exit: exitTypeParameterDeclaration},
		model.KindTypeParameter:              {Exit: exitTypeParameter},
		model.KindTypeParameterInstantiation: {Exit: exitTypeParameterInstantiation},
		model.KindGenericTypeAnnotation:      {Exit: exitGeneric},
		model.KindQualifiedTypeIdentifier:    {Exit: exitQualifiedTypeIdentifier},

		// object types
		model.KindObjectTypeAnnotation:   {Enter: enterObjectType, Exit: exitObjectType},
		model.KindObjectTypeProperty:     {Exit: exitObjectTypeProperty},
		model.KindObjectTypeIndexer:      {Exit: exitObjectTypeIndexer},
		model.KindObjectTypeCallProperty: {Exit: exitObjectTypeCallProperty},

		// functions and classes
		model.KindFunctionDeclaration:     {Enter: enterFunction},
		model.KindFunctionExpression:      {Enter: enterFunction},
		model.KindArrowFunctionExpression: {Enter: enterFunction},
		model.KindObjectMethod:            {Enter: enterFunction},
		model.KindClassMethod:             {Enter: enterFunction},
		model.KindClassProperty:           {Enter: enterClassProperty},
		model.KindTypeCastExpression:      {Exit: exitTypeCast},

		// declarations
		model.KindTypeAlias:                {Exit: exitTypeAlias},
		model.KindOpaqueType:               {Exit: exitOpaqueType},
		model.KindInterfaceDeclaration:     {Exit: exitInterface},
		model.KindInterfaceExtends:         {Exit: exitHeritage},
		model.KindClassImplements:          {Exit: exitHeritage},
		model.KindDeclareVariable:          {Exit: exitDeclareVariable},
		model.KindDeclareFunction:          {Exit: exitDeclareFunction},
		model.KindDeclareClass:             {Exit: exitDeclareClass},
		model.KindDeclareTypeAlias:         {Exit: exitDeclareTypeAlias},
		model.KindDeclareOpaqueType:        {Exit: exitDeclareOpaqueType},
		model.KindDeclareExportDeclaration: {Exit: exitDeclareExport},
		model.KindDeclareModule:            {Exit: exitDeclareModule},
		model.KindDeclareModuleExports:     {Exit: exitDeclareModuleExports},

		// modules
		model.KindImportDeclaration:      {Exit: exitImport},
		model.KindExportNamedDeclaration: {Exit: exitExportNamed},
		model.KindExportAllDeclaration:   {Exit: exitExportAll},
	}
}

// seed gives a freshly built replacement the span and comments of the node
// it replaces. Replacements that already come from source keep their own.
func seed[T model.Node](out T, from model.Node) T {
	if out.Base().Span.Valid() {
		return out
	}
	return model.CopyBase(out, from)
}

// unwrap strips a type annotation wrapper.
func unwrap(n model.Node) model.Node {
	switch a := n.(type) {
	case *model.TSTypeAnnotation:
		return a.TypeAnnotation
	case *model.TypeAnnotation:
		return a.TypeAnnotation
	}
	return n
}

// typeArgs returns the arguments of a converted type argument list.
func typeArgs(n model.Node) []model.Node {
	if inst, ok := n.(*model.TSTypeParameterInstantiation); ok {
		return inst.Params
	}
	return nil
}
