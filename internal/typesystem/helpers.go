package typesystem

// Built-in Aggregate primitives every program starts with in scope,
// exposed as package vars the way the teacher exposes its TCon primitives.
var (
	Int    Type = AggregateType{Name: "Int"}
	Float  Type = AggregateType{Name: "Float"}
	Bool   Type = AggregateType{Name: "Bool"}
	Char   Type = AggregateType{Name: "Character"}
	String Type = AggregateType{Name: "String"}
	Void   Type = AggregateType{Name: "Void"}
	Any    Type = AggregateType{Name: "Any"}
	Never  Type = AggregateType{Name: "Never"}
)

// NewFunctionType builds a single-parameter FunctionType, the common case
// for closures and subscripts with one argument.
func NewFunctionType(from, to Type) Type {
	return FunctionType{Params: []Type{from}, ReturnType: to}
}

// NewOptional wraps t as Optional<t>, modeled as a one-case generic enum
// specialization rather than a distinct category — Optional has no syntax
// or rules an ordinary generic enum doesn't already have.
func NewOptional(t Type) Type {
	return &SpecializedType{Generic: optionalEnum, Args: []Type{t}}
}

// IsOptional reports whether t is Optional<Wrapped> and returns Wrapped.
// The match is by the generic template's declared name, not value identity,
// so specializations built from the registry's own Optional singleton and
// ones built from this package's NewOptional compare the same way they
// would under Equal.
func IsOptional(t Type) (Type, bool) {
	spec, ok := t.(*SpecializedType)
	if !ok || len(spec.Args) != 1 {
		return nil, false
	}
	en, ok := ResolveAlias(spec.Generic).(*EnumType)
	if !ok || en.Name != optionalEnum.Name {
		return nil, false
	}
	return spec.Args[0], true
}

var optionalGenericParam = GenericParameterType{Name: "Wrapped", OwnerName: "Optional"}

var optionalEnum = &EnumType{
	Name:       "Optional",
	TypeParams: []GenericParameterType{optionalGenericParam},
	Cases: []EnumCaseType{
		{Name: "none"},
		{Name: "some", AssociatedTypes: []Type{optionalGenericParam}},
	},
}

// errorTypeSentinel is produced in place of a type that failed to resolve
// (spec.md §7's name-resolution band): it compares compatible with
// everything so one failed lookup doesn't cascade into a storm of
// secondary diagnostics downstream.
type errorTypeSentinel struct{}

func (errorTypeSentinel) Category() Category { return CategoryAggregate }
func (errorTypeSentinel) String() string     { return "<error type>" }
func (errorTypeSentinel) Equal(Type) bool    { return true }

// ErrorType is the sentinel the resolver and analyzer type-tag a node with
// when it cannot be resolved, instead of leaving it nil.
var ErrorType Type = errorTypeSentinel{}

func isErrorType(t Type) bool {
	_, ok := t.(errorTypeSentinel)
	return ok
}

// CompatibleTypes reports whether a value of type 'from' may stand in for
// 'to': identical types, or either side being ErrorType. Analyzer checks
// use this instead of raw Equal so a single unresolved name doesn't fail
// every expression that mentions it.
func CompatibleTypes(from, to Type) bool {
	if from == nil || to == nil || isErrorType(from) || isErrorType(to) {
		return true
	}
	return from.Equal(to)
}

// Substitute returns t with every GenericParameterType matching a key in
// bindings (by Name) replaced by its bound type. Used to project a
// generic declaration's member/field types onto a particular
// SpecializedType without storing a duplicate member table per
// specialization.
func Substitute(t Type, bindings map[string]Type) Type {
	switch v := t.(type) {
	case GenericParameterType:
		if bound, ok := bindings[v.Name]; ok {
			return bound
		}
		return v
	case TupleType:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Substitute(e, bindings)
		}
		return TupleType{Elements: elems, Labels: v.Labels}
	case FunctionType:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = Substitute(p, bindings)
		}
		return FunctionType{Params: params, ReturnType: Substitute(v.ReturnType, bindings), IsVariadic: v.IsVariadic}
	case *SpecializedType:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, bindings)
		}
		return &SpecializedType{Generic: v.Generic, Args: args}
	case ProtocolCompositionType:
		protos := make([]Type, len(v.Protocols))
		for i, p := range v.Protocols {
			protos[i] = Substitute(p, bindings)
		}
		return ProtocolCompositionType{Protocols: protos}
	case *AliasType:
		return Substitute(v.Target, bindings)
	case MetaType:
		return MetaType{Of: Substitute(v.Of, bindings)}
	default:
		return t
	}
}

// BindingsFor zips a generic declaration's type parameters against
// concrete arguments, by position, for use with Substitute.
func BindingsFor(params []GenericParameterType, args []Type) map[string]Type {
	bindings := make(map[string]Type, len(params))
	for i, p := range params {
		if i < len(args) {
			bindings[p.Name] = args[i]
		}
	}
	return bindings
}

// TypeParamsOf returns the generic declaration's own type parameters, nil
// for a non-generic nominal type.
func TypeParamsOf(t Type) []GenericParameterType {
	switch v := t.(type) {
	case *ClassType:
		return v.TypeParams
	case *StructType:
		return v.TypeParams
	case *EnumType:
		return v.TypeParams
	case *ProtocolType:
		return v.TypeParams
	default:
		return nil
	}
}
