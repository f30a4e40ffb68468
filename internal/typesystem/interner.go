package typesystem

import "sync"

// Interner deduplicates structurally-equal Type values so that two
// separately-constructed types with the same shape compare == as Go
// interface values, not just via Equal. It also caches generic
// specializations, which is what lets the resolver break cycles in
// recursive generic types: the cache entry for a SpecializedType is
// inserted before its Args are resolved, so a type that refers back to
// itself (e.g. a linked Node<T> whose next field is Node<T>) finds the
// in-progress specialization instead of recursing forever.
type Interner struct {
	mu    sync.Mutex
	byKey map[string]Type
	specs map[string]*SpecializedType
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		byKey: make(map[string]Type),
		specs: make(map[string]*SpecializedType),
	}
}

// Intern returns the canonical representative for t: the first value with
// this String() ever passed to Intern, so repeated interning of
// structurally-equal types returns the identical Go value.
func (in *Interner) Intern(t Type) Type {
	in.mu.Lock()
	defer in.mu.Unlock()
	key := t.String()
	if existing, ok := in.byKey[key]; ok {
		return existing
	}
	in.byKey[key] = t
	return t
}

// specializationKey identifies a (generic, args...) pair independent of
// interning order.
func specializationKey(generic Type, args []Type) string {
	key := generic.String() + "<"
	for i, a := range args {
		if i > 0 {
			key += ","
		}
		key += a.String()
	}
	return key + ">"
}

// LookupSpecialization returns a previously cached specialization of
// generic over args, if one is already in flight or complete.
func (in *Interner) LookupSpecialization(generic Type, args []Type) (*SpecializedType, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	s, ok := in.specs[specializationKey(generic, args)]
	return s, ok
}

// CacheSpecialization records a (possibly still-incomplete) specialization
// before the caller recurses into resolving its Args, breaking cycles in
// self-referential generic declarations.
func (in *Interner) CacheSpecialization(generic Type, args []Type, spec *SpecializedType) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.specs[specializationKey(generic, args)] = spec
}

// Specialize returns the interned specialization of generic over args,
// creating and caching a placeholder first so that resolving the
// returned SpecializedType's own Args field (done by the caller, which
// has resolver context this package does not) can safely re-enter
// Specialize for the same (generic, args) pair without looping.
func (in *Interner) Specialize(generic Type, args []Type) *SpecializedType {
	if existing, ok := in.LookupSpecialization(generic, args); ok {
		return existing
	}
	spec := &SpecializedType{Generic: generic, Args: args}
	in.CacheSpecialization(generic, args, spec)
	return spec
}
