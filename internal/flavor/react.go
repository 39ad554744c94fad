package flavor

import (
	"github.com/cmmoran/flowts/internal/model"
)

// ReactName is a framework type name with a target-dialect counterpart.
type ReactName int

const (
	ReactInvalid ReactName = iota

	SyntheticEvent
	SyntheticAnimationEvent
	SyntheticClipboardEvent
	SyntheticCompositionEvent
	SyntheticInputEvent
	SyntheticUIEvent
	SyntheticFocusEvent
	SyntheticKeyboardEvent
	SyntheticMouseEvent
	SyntheticDragEvent
	SyntheticWheelEvent
	SyntheticPointerEvent
	SyntheticTouchEvent
	SyntheticTransitionEvent

	PrivateElementType
	PrivateNode
	PrivateElement
	PrivateComponent
	PrivateComponentType
	PrivateContext
	PrivateRef
	PrivateStatelessFunctionalComponent

	Node
	Text
	Child
	Children
	Element
	Fragment
	Portal
	NodeArray
	ElementConfig

	reactCount
)

// ReactScope tells where a name is visible without qualification.
type ReactScope int

const (
	// Global names are always in scope.
	Global ReactScope = iota
	// Exported names are members of the framework module; they are only
	// recognized bare when imported from it.
	Exported
)

// ReactEntry describes how one framework name is converted.
type ReactEntry struct {
	// Flow is the origin spelling, without any namespace.
	Flow string
	// TS is the member of the target namespace it maps to.
	TS    string
	Scope ReactScope
	// Expand builds a target type that is more than a rename. ref resolves a
	// member of the framework namespace to a bare or qualified name.
	Expand func(ref func(member string) model.Node, args []model.Node) model.Node
}

// Policy is always QualifyByState: whether the result is bare depends on how
// the name was imported.
func (ReactEntry) Policy() Policy { return QualifyByState }

var reactNames = [reactCount]ReactEntry{
	SyntheticEvent:            {Flow: "SyntheticEvent", TS: "SyntheticEvent"},
	SyntheticAnimationEvent:   {Flow: "SyntheticAnimationEvent", TS: "AnimationEvent"},
	SyntheticClipboardEvent:   {Flow: "SyntheticClipboardEvent", TS: "ClipboardEvent"},
	SyntheticCompositionEvent: {Flow: "SyntheticCompositionEvent", TS: "CompositionEvent"},
	SyntheticInputEvent:       {Flow: "SyntheticInputEvent", TS: "SyntheticEvent"},
	SyntheticUIEvent:          {Flow: "SyntheticUIEvent", TS: "UIEvent"},
	SyntheticFocusEvent:       {Flow: "SyntheticFocusEvent", TS: "FocusEvent"},
	SyntheticKeyboardEvent:    {Flow: "SyntheticKeyboardEvent", TS: "KeyboardEvent"},
	SyntheticMouseEvent:       {Flow: "SyntheticMouseEvent", TS: "MouseEvent"},
	SyntheticDragEvent:        {Flow: "SyntheticDragEvent", TS: "DragEvent"},
	SyntheticWheelEvent:       {Flow: "SyntheticWheelEvent", TS: "WheelEvent"},
	SyntheticPointerEvent:     {Flow: "SyntheticPointerEvent", TS: "PointerEvent"},
	SyntheticTouchEvent:       {Flow: "SyntheticTouchEvent", TS: "TouchEvent"},
	SyntheticTransitionEvent:  {Flow: "SyntheticTransitionEvent", TS: "TransitionEvent"},

	// React$ElementType takes no type arguments; React.ElementType takes one
	// optional argument, so the reference carries over unchanged.
	PrivateElementType: {Flow: "React$ElementType", TS: "ElementType"},
	PrivateNode: {Flow: "React$Node", TS: "ReactNode", Expand: func(ref func(string) model.Node, _ []model.Node) model.Node {
		return model.TypeRef(ref("ReactNode"))
	}},
	PrivateElement:       {Flow: "React$Element", TS: "ReactElement", Expand: expandElement},
	PrivateComponent:     {Flow: "React$Component", TS: "Component"},
	PrivateComponentType: {Flow: "React$ComponentType", TS: "ComponentType"},
	PrivateContext:       {Flow: "React$Context", TS: "Context"},
	PrivateRef:           {Flow: "React$Ref", TS: "Ref"},

	PrivateStatelessFunctionalComponent: {Flow: "React$StatelessFunctionalComponent", TS: "FC"},

	Node:      {Flow: "Node", TS: "ReactNode", Scope: Exported},
	Text:      {Flow: "Text", TS: "ReactText", Scope: Exported},
	Child:     {Flow: "Child", TS: "ReactChild", Scope: Exported},
	Children:  {Flow: "Children", TS: "ReactChildren", Scope: Exported},
	Element:   {Flow: "Element", TS: "ReactElement", Scope: Exported, Expand: expandElement},
	Fragment:  {Flow: "Fragment", TS: "ReactFragment", Scope: Exported},
	Portal:    {Flow: "Portal", TS: "ReactPortal", Scope: Exported},
	NodeArray: {Flow: "NodeArray", TS: "ReactNodeArray", Scope: Exported},
	ElementConfig: {Flow: "ElementConfig", TS: "ComponentProps", Scope: Exported, Expand: func(ref func(string) model.Node, args []model.Node) model.Node {
		if len(args) == 0 {
			return nil
		}
		return model.TypeRef(model.Qualified("JSX", "LibraryManagedAttributes"),
			args[0], model.TypeRef(ref("ComponentProps"), model.Clone(args[0])))
	}},
}

// expandElement turns Element<T> into ReactElement<ComponentProps<T>, T>.
func expandElement(ref func(string) model.Node, args []model.Node) model.Node {
	if len(args) == 0 {
		return model.TypeRef(ref("ReactElement"))
	}
	return model.TypeRef(ref("ReactElement"),
		model.TypeRef(ref("ComponentProps"), args[0]), model.Clone(args[0]))
}

var (
	reactByName   = map[string]ReactName{}
	reactByMember = map[string]ReactName{}
)

func init() {
	for r := ReactInvalid + 1; r < reactCount; r++ {
		e := reactNames[r]
		reactByName[e.Flow] = r
		if e.Scope == Exported {
			reactByMember[e.Flow] = r
		}
	}
}

// LookupReact finds a framework name written without a namespace.
func LookupReact(name string) (ReactName, bool) {
	r, ok := reactByName[name]
	return r, ok
}

// LookupReactMember finds a framework name written as React.<member>.
func LookupReactMember(member string) (ReactName, bool) {
	r, ok := reactByMember[member]
	return r, ok
}

// ReactNames returns every framework name.
func ReactNames() []ReactName {
	out := make([]ReactName, 0, reactCount-1)
	for r := ReactInvalid + 1; r < reactCount; r++ {
		out = append(out, r)
	}
	return out
}

// Entry returns the conversion entry of r.
func (r ReactName) Entry() ReactEntry {
	if r <= ReactInvalid || r >= reactCount {
		return ReactEntry{}
	}
	return reactNames[r]
}

func (r ReactName) String() string {
	if e := r.Entry(); e.Flow != "" {
		return e.Flow
	}
	return "Invalid"
}

// Resolve builds the target type for r with the given type arguments. When
// bare is set the framework members are referenced without the namespace.
// An empty argument list yields a reference without type arguments.
func (r ReactName) Resolve(args []model.Node, bare bool) model.Node {
	e := r.Entry()
	ref := func(member string) model.Node {
		if bare {
			return model.Ident(member)
		}
		return model.Qualified(ReactNamespace, member)
	}
	if e.Expand != nil {
		if n := e.Expand(ref, args); n != nil {
			return n
		}
	}
	return model.TypeRef(ref(e.TS), args...)
}
