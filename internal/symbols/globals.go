package symbols

import (
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/typesystem"
)

// installGlobals populates the global scope with the singletons spec.md
// §4.4 lists: primitive types, the Array/Dictionary/Optional/Set
// templates, the built-in protocols, and the operator table (exposed via
// LookupOperator rather than duplicated into the symbol table, since it
// is keyed by symbol+fixity, not by identifier name).
func installGlobals(r *Registry) {
	global := r.Global()

	for _, p := range config.BuiltinPrimitives {
		t := typesystem.AggregateType{Name: p.Name}
		global.names[p.Name] = NewTypeSymbol(p.Name, t, nil)
	}

	protocolTypes := make(map[string]*typesystem.ProtocolType, len(config.BuiltinProtocols))
	for _, p := range config.BuiltinProtocols {
		protocolTypes[p.Name] = &typesystem.ProtocolType{Name: p.Name}
	}
	for _, p := range config.BuiltinProtocols {
		pt := protocolTypes[p.Name]
		for _, super := range p.SuperProtocols {
			if superType, ok := protocolTypes[super]; ok {
				pt.SuperProtocols = append(pt.SuperProtocols, superType)
			}
		}
		global.names[p.Name] = NewTypeSymbol(p.Name, pt, nil)
	}

	for _, g := range config.BuiltinGenericTypes {
		params := make([]typesystem.GenericParameterType, g.Arity)
		for i := range params {
			params[i] = typesystem.GenericParameterType{Name: genericParamName(g.Name, i), OwnerName: g.Name}
		}
		var t typesystem.Type
		switch g.Name {
		case config.OptionalTypeName:
			t = &typesystem.EnumType{
				Name:       g.Name,
				TypeParams: params,
				Cases: []typesystem.EnumCaseType{
					{Name: "none"},
					{Name: "some", AssociatedTypes: []typesystem.Type{params[0]}},
				},
			}
		default:
			t = &typesystem.StructType{Name: g.Name, TypeParams: params}
		}
		global.names[g.Name] = NewTypeSymbol(g.Name, t, nil)
	}
}

func genericParamName(typeName string, i int) string {
	if typeName == config.DictionaryTypeName {
		if i == 0 {
			return "Key"
		}
		return "Value"
	}
	if typeName == config.OptionalTypeName {
		return "Wrapped"
	}
	return "Element"
}
