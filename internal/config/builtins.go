package config

// Built-in protocol/type bootstrap tables — the SINGLE SOURCE OF TRUTH the
// symbol registry reads to populate global scope before resolving a
// compilation unit, in the same Go-literal-table idiom the teacher uses
// for its own builtin bootstrap.

// ProtocolInfo describes one built-in protocol's requirement surface.
type ProtocolInfo struct {
	Name           string
	SuperProtocols []string
	Requirements   []string // method/operator signatures the conformance checker looks for
	Description    string
}

var BuiltinProtocols = []ProtocolInfo{
	{Name: EquatableProtocolName, Requirements: []string{"=="}, Description: "Types that support equality comparison"},
	{Name: ComparableProtocolName, SuperProtocols: []string{EquatableProtocolName}, Requirements: []string{"<"}, Description: "Types with a total order"},
	{Name: HashableProtocolName, SuperProtocols: []string{EquatableProtocolName}, Requirements: []string{"hash"}, Description: "Types that can be used as Dictionary/Set keys"},
	{Name: CustomStringConvertibleProtocolName, Requirements: []string{"description"}, Description: "Types with a custom textual representation"},
}

// GetProtocolInfo returns protocol info by name.
func GetProtocolInfo(name string) *ProtocolInfo {
	for i := range BuiltinProtocols {
		if BuiltinProtocols[i].Name == name {
			return &BuiltinProtocols[i]
		}
	}
	return nil
}

// GenericTypeInfo describes a built-in generic type's arity and which
// protocols it conforms to unconditionally, for the symbol registry's
// global-singleton bootstrap (spec.md §4.4: "Array/Dictionary/Optional
// templates").
type GenericTypeInfo struct {
	Name        string
	Arity       int
	Protocols   []string
	Description string
}

var BuiltinGenericTypes = []GenericTypeInfo{
	{Name: ArrayTypeName, Arity: 1, Description: "Ordered, random-access collection"},
	{Name: DictionaryTypeName, Arity: 2, Description: "Unordered key/value collection"},
	{Name: SetTypeName, Arity: 1, Description: "Unordered collection of unique elements"},
	{Name: RangeTypeName, Arity: 1, Description: "Interval produced by the ... and ..< operators"},
	{Name: OptionalTypeName, Arity: 1, Description: "A value that may be absent: .some(wrapped) or .none"},
}

// GetGenericTypeInfo returns generic-type info by name.
func GetGenericTypeInfo(name string) *GenericTypeInfo {
	for i := range BuiltinGenericTypes {
		if BuiltinGenericTypes[i].Name == name {
			return &BuiltinGenericTypes[i]
		}
	}
	return nil
}

// PrimitiveTypeInfo describes one built-in Aggregate primitive.
type PrimitiveTypeInfo struct {
	Name        string
	Protocols   []string
	Description string
}

var BuiltinPrimitives = []PrimitiveTypeInfo{
	{Name: "Int", Protocols: []string{ComparableProtocolName, HashableProtocolName}, Description: "Platform-width signed integer"},
	{Name: "Float", Protocols: []string{ComparableProtocolName}, Description: "Double-precision floating point"},
	{Name: "Bool", Protocols: []string{EquatableProtocolName, HashableProtocolName}, Description: "Boolean value"},
	{Name: "Character", Protocols: []string{ComparableProtocolName, HashableProtocolName}, Description: "Extended grapheme cluster"},
	{Name: "String", Protocols: []string{ComparableProtocolName, HashableProtocolName, CustomStringConvertibleProtocolName}, Description: "Unicode string"},
	{Name: "Void", Description: "The empty tuple, the implicit return type of a function with no declared return"},
	{Name: "Any", Description: "The top type every value conforms to"},
	{Name: "Never", Description: "The bottom type; a function returning Never never returns normally"},
}

// GetPrimitiveTypeInfo returns primitive info by name.
func GetPrimitiveTypeInfo(name string) *PrimitiveTypeInfo {
	for i := range BuiltinPrimitives {
		if BuiltinPrimitives[i].Name == name {
			return &BuiltinPrimitives[i]
		}
	}
	return nil
}
