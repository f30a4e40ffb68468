package config

const SourceFileExt = ".swy"

// SourceFileExtensions are all recognized source file extensions for the
// driver's file-discovery step.
var SourceFileExtensions = []string{".swy", ".swift"}

// Global-scope protocol/function names the symbol registry bootstraps
// before resolving a compilation unit.
const (
	EquatableProtocolName = "Equatable"
	HashableProtocolName  = "Hashable"
	ComparableProtocolName = "Comparable"
	CustomStringConvertibleProtocolName = "CustomStringConvertible"
)

// Built-in type names the symbol registry installs as global singletons.
const (
	ArrayTypeName      = "Array"
	DictionaryTypeName = "Dictionary"
	OptionalTypeName   = "Optional"
	SetTypeName        = "Set"
	RangeTypeName      = "Range"
	OptionalSomeCase   = "some"
	OptionalNoneCase   = "none"
)

// SelfIdentifier and SelfTypeIdentifier are the reserved spellings for the
// implicit receiver value and the contextual Self type, respectively.
const (
	SelfIdentifier     = "self"
	SelfTypeIdentifier = "Self"
)
