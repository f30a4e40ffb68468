// Package typesystem defines the canonical, nominally-typed representation
// every resolved declaration and expression is annotated with. Unlike the
// syntactic ast.TypeExpr tree (what the programmer wrote), a Type here is
// always fully resolved: aliases collapsed, generics either still abstract
// (GenericParameterType) or specialized (SpecializedType) with every
// argument itself resolved.
package typesystem

import (
	"fmt"
	"sort"
	"strings"
)

// Category names the fixed set of type shapes the analyzer distinguishes.
// It is never extended at runtime — every Type value reports exactly one.
type Category int

const (
	CategoryAggregate Category = iota // built-in value types: Int, Bool, Float, Char, String, Void, Any, Never
	CategoryClass
	CategoryStruct
	CategoryEnum
	CategoryProtocol
	CategoryTuple
	CategoryFunction
	CategorySpecialized
	CategoryAlias
	CategoryGenericParameter
	CategoryProtocolComposition
	CategoryModule
	CategoryExtension
	CategorySelf
	CategoryMetaType
)

func (c Category) String() string {
	switch c {
	case CategoryAggregate:
		return "Aggregate"
	case CategoryClass:
		return "Class"
	case CategoryStruct:
		return "Struct"
	case CategoryEnum:
		return "Enum"
	case CategoryProtocol:
		return "Protocol"
	case CategoryTuple:
		return "Tuple"
	case CategoryFunction:
		return "Function"
	case CategorySpecialized:
		return "Specialized"
	case CategoryAlias:
		return "Alias"
	case CategoryGenericParameter:
		return "GenericParameter"
	case CategoryProtocolComposition:
		return "ProtocolComposition"
	case CategoryModule:
		return "Module"
	case CategoryExtension:
		return "Extension"
	case CategorySelf:
		return "Self"
	case CategoryMetaType:
		return "MetaType"
	default:
		return "Unknown"
	}
}

// Type is implemented by every canonical type value. Equal is structural:
// two distinct Go values representing the same shape compare equal, which
// is what lets the Interner collapse them to one.
type Type interface {
	Category() Category
	String() string
	Equal(Type) bool
}

// NamedType is implemented by the category of types that have a declared
// name a diagnostic can report (Class/Struct/Enum/Protocol/Alias/Module).
type NamedType interface {
	Type
	TypeName() string
}

// AggregateType is a built-in value type with no further structure visible
// to this module (Int, Bool, Float, Char, String, Void, Any, Never).
type AggregateType struct {
	Name string
}

func (t AggregateType) Category() Category { return CategoryAggregate }
func (t AggregateType) String() string     { return t.Name }
func (t AggregateType) TypeName() string   { return t.Name }
func (t AggregateType) Equal(o Type) bool {
	other, ok := o.(AggregateType)
	return ok && other.Name == t.Name
}

// GenericParameterType is an unbound type parameter: the 'T' in class
// Box<T>. Equality is by declaring-context + name, since two different
// generic declarations may each have their own 'T'.
type GenericParameterType struct {
	Name        string
	OwnerName   string // the declaring Class/Struct/Enum/Protocol/Function's name
	Constraints []Type // protocols this parameter must conform to
}

func (t GenericParameterType) Category() Category { return CategoryGenericParameter }
func (t GenericParameterType) String() string     { return t.Name }
func (t GenericParameterType) Equal(o Type) bool {
	other, ok := o.(GenericParameterType)
	return ok && other.Name == t.Name && other.OwnerName == t.OwnerName
}

// Field is a single stored or computed property signature.
type Field struct {
	Name string
	Type Type
}

// ClassType models a nominal reference type.
type ClassType struct {
	Name       string
	TypeParams []GenericParameterType
	SuperClass Type // nil for a root class
	Protocols  []Type
}

func (t *ClassType) Category() Category { return CategoryClass }
func (t *ClassType) TypeName() string   { return t.Name }
func (t *ClassType) String() string     { return t.Name }
func (t *ClassType) Equal(o Type) bool {
	other, ok := o.(*ClassType)
	return ok && other.Name == t.Name
}

// StructType models a nominal value type.
type StructType struct {
	Name       string
	TypeParams []GenericParameterType
	Protocols  []Type
}

func (t *StructType) Category() Category { return CategoryStruct }
func (t *StructType) TypeName() string   { return t.Name }
func (t *StructType) String() string     { return t.Name }
func (t *StructType) Equal(o Type) bool {
	other, ok := o.(*StructType)
	return ok && other.Name == t.Name
}

// EnumCaseType is one case of an EnumType.
type EnumCaseType struct {
	Name            string
	AssociatedTypes []Type
}

// EnumType models a nominal sum type, optionally with a raw-value backing.
type EnumType struct {
	Name       string
	TypeParams []GenericParameterType
	RawType    Type // nil unless this is a raw-value enum
	Cases      []EnumCaseType
	Protocols  []Type
}

func (t *EnumType) Category() Category { return CategoryEnum }
func (t *EnumType) TypeName() string   { return t.Name }
func (t *EnumType) String() string     { return t.Name }
func (t *EnumType) Equal(o Type) bool {
	other, ok := o.(*EnumType)
	return ok && other.Name == t.Name
}

// ProtocolType models a nominal interface. Protocols that declare
// associated types carry them in TypeParams, same as a generic class.
type ProtocolType struct {
	Name           string
	TypeParams     []GenericParameterType
	SuperProtocols []Type
	ClassBound     bool // a ': class' constrained protocol (spec.md modifier checks key off this)
}

func (t *ProtocolType) Category() Category { return CategoryProtocol }
func (t *ProtocolType) TypeName() string   { return t.Name }
func (t *ProtocolType) String() string     { return t.Name }
func (t *ProtocolType) Equal(o Type) bool {
	other, ok := o.(*ProtocolType)
	return ok && other.Name == t.Name
}

// TupleType: (Int, Bool), (x: Int, y: Int)
type TupleType struct {
	Elements []Type
	Labels   []string // parallel to Elements; "" means unlabeled
}

func (t TupleType) Category() Category { return CategoryTuple }
func (t TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		if i < len(t.Labels) && t.Labels[i] != "" {
			parts[i] = fmt.Sprintf("%s: %s", t.Labels[i], e.String())
		} else {
			parts[i] = e.String()
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TupleType) Equal(o Type) bool {
	other, ok := o.(TupleType)
	if !ok || len(other.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(other.Elements[i]) {
			return false
		}
		label, otherLabel := "", ""
		if i < len(t.Labels) {
			label = t.Labels[i]
		}
		if i < len(other.Labels) {
			otherLabel = other.Labels[i]
		}
		if label != otherLabel {
			return false
		}
	}
	return true
}

// FunctionType: (Int, Int) -> Bool
type FunctionType struct {
	Params     []Type
	ReturnType Type
	IsVariadic bool
}

func (t FunctionType) Category() Category { return CategoryFunction }
func (t FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	suffix := ""
	if t.IsVariadic && len(parts) > 0 {
		parts[len(parts)-1] += "..."
	}
	return fmt.Sprintf("(%s) -> %s%s", strings.Join(parts, ", "), t.ReturnType.String(), suffix)
}

func (t FunctionType) Equal(o Type) bool {
	other, ok := o.(FunctionType)
	if !ok || len(other.Params) != len(t.Params) || t.IsVariadic != other.IsVariadic {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}
	return t.ReturnType.Equal(other.ReturnType)
}

// SpecializedType is the result of binding a generic Class/Struct/Enum/
// Protocol/Function's type parameters to concrete arguments. It is always
// produced and cached by the resolver's specialization step (insert into
// the cache before recursing into Args, breaking recursive-type cycles)
// rather than constructed ad hoc.
type SpecializedType struct {
	Generic Type // the unspecialized ClassType/StructType/EnumType/ProtocolType
	Args    []Type
}

func (t *SpecializedType) Category() Category { return CategorySpecialized }
func (t *SpecializedType) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Generic.String(), strings.Join(parts, ", "))
}

func (t *SpecializedType) Equal(o Type) bool {
	other, ok := o.(*SpecializedType)
	if !ok || !t.Generic.Equal(other.Generic) || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// AliasType is a `typealias Name = Target` binding. Resolution always
// collapses through aliases (see ResolveAlias); the Alias value itself is
// kept so diagnostics can still name the alias the user actually wrote.
type AliasType struct {
	Name   string
	Target Type
}

func (t *AliasType) Category() Category { return CategoryAlias }
func (t *AliasType) TypeName() string   { return t.Name }
func (t *AliasType) String() string     { return t.Name }
func (t *AliasType) Equal(o Type) bool {
	other, ok := o.(*AliasType)
	return ok && other.Name == t.Name
}

// ProtocolCompositionType: A & B & C. Membership is a set — the same
// protocol named twice collapses to one occurrence (see NewProtocolComposition).
type ProtocolCompositionType struct {
	Protocols []Type
}

func (t ProtocolCompositionType) Category() Category { return CategoryProtocolComposition }
func (t ProtocolCompositionType) String() string {
	parts := make([]string, len(t.Protocols))
	for i, p := range t.Protocols {
		parts[i] = p.String()
	}
	return strings.Join(parts, " & ")
}

func (t ProtocolCompositionType) Equal(o Type) bool {
	other, ok := o.(ProtocolCompositionType)
	if !ok || len(other.Protocols) != len(t.Protocols) {
		return false
	}
	mine := make([]string, len(t.Protocols))
	theirs := make([]string, len(other.Protocols))
	for i := range t.Protocols {
		mine[i] = t.Protocols[i].String()
		theirs[i] = other.Protocols[i].String()
	}
	sort.Strings(mine)
	sort.Strings(theirs)
	for i := range mine {
		if mine[i] != theirs[i] {
			return false
		}
	}
	return true
}

// NewProtocolComposition builds a composition with duplicate protocols
// removed (spec.md Open Question: composition membership is a set).
func NewProtocolComposition(protocols []Type) Type {
	seen := map[string]bool{}
	unique := make([]Type, 0, len(protocols))
	for _, p := range protocols {
		key := p.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	if len(unique) == 1 {
		return unique[0]
	}
	return ProtocolCompositionType{Protocols: unique}
}

// ModuleType names an imported module as a first-class value so
// `import Foo` lets `Foo.Bar` resolve through member access.
type ModuleType struct {
	Name string
}

func (t ModuleType) Category() Category { return CategoryModule }
func (t ModuleType) TypeName() string   { return t.Name }
func (t ModuleType) String() string     { return t.Name }
func (t ModuleType) Equal(o Type) bool {
	other, ok := o.(ModuleType)
	return ok && other.Name == t.Name
}

// ExtensionType names the (possibly protocol-constrained) subject of an
// `extension` declaration, recorded so the analyzer can attribute added
// members back to their extending declaration for conflict diagnostics.
type ExtensionType struct {
	Extended  Type
	Protocols []Type
}

func (t ExtensionType) Category() Category { return CategoryExtension }
func (t ExtensionType) String() string     { return "extension " + t.Extended.String() }
func (t ExtensionType) Equal(o Type) bool {
	other, ok := o.(ExtensionType)
	return ok && t.Extended.Equal(other.Extended)
}

// SelfType is the bare name `Self` used inside a class/struct/enum/
// protocol body. It is resolved per call site rather than substituted
// away at declaration time, since in a protocol it denotes "whatever type
// eventually conforms."
type SelfType struct {
	Context Type // the enclosing declaration's type; nil inside a protocol body
}

func (t SelfType) Category() Category { return CategorySelf }
func (t SelfType) String() string {
	if t.Context != nil {
		return "Self(" + t.Context.String() + ")"
	}
	return "Self"
}

func (t SelfType) Equal(o Type) bool {
	other, ok := o.(SelfType)
	if !ok {
		return false
	}
	if t.Context == nil || other.Context == nil {
		return t.Context == nil && other.Context == nil
	}
	return t.Context.Equal(other.Context)
}

// MetaType is the type of a type: using a TypeIdentifierExpr as a callee
// (a constructor reference, e.g. `Point.init` or bare `Point` in `Point.self`)
// types to MetaType{Of: Point}, not to Point itself.
type MetaType struct {
	Of Type
}

func (t MetaType) Category() Category { return CategoryMetaType }
func (t MetaType) String() string     { return "Type<" + t.Of.String() + ">" }
func (t MetaType) Equal(o Type) bool {
	other, ok := o.(MetaType)
	return ok && t.Of.Equal(other.Of)
}

// ContainsGenericParameters reports whether t mentions any unbound
// GenericParameterType anywhere in its structure — used to decide whether
// a declaration is still generic or has been fully specialized.
func ContainsGenericParameters(t Type) bool {
	switch v := t.(type) {
	case GenericParameterType:
		return true
	case TupleType:
		for _, e := range v.Elements {
			if ContainsGenericParameters(e) {
				return true
			}
		}
	case FunctionType:
		for _, p := range v.Params {
			if ContainsGenericParameters(p) {
				return true
			}
		}
		return ContainsGenericParameters(v.ReturnType)
	case *SpecializedType:
		for _, a := range v.Args {
			if ContainsGenericParameters(a) {
				return true
			}
		}
	case ProtocolCompositionType:
		for _, p := range v.Protocols {
			if ContainsGenericParameters(p) {
				return true
			}
		}
	case *AliasType:
		return ContainsGenericParameters(v.Target)
	case MetaType:
		return ContainsGenericParameters(v.Of)
	}
	return false
}

// ResolveAlias collapses a chain of AliasType wrappers down to the first
// non-alias type underneath.
func ResolveAlias(t Type) Type {
	for {
		alias, ok := t.(*AliasType)
		if !ok {
			return t
		}
		t = alias.Target
	}
}
