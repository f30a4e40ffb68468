package ast

// Modifier is a single declaration-modifier bit. The full set and its
// conflict table live with the declarations that carry it; this type only
// names the bits so every modifier keyword maps onto exactly one flag.
type Modifier uint32

const (
	ModNone Modifier = 0
	ModStatic Modifier = 1 << iota
	ModClass // the 'class' modifier on a member, distinct from a class declaration
	ModFinal
	ModOverride
	ModRequired
	ModConvenience
	ModDynamic
	ModLazy
	ModMutating
	ModNonmutating
	ModOptional // protocol requirement marked optional
	ModUnowned
	ModUnownedSafe
	ModUnownedUnsafe
	ModWeak
	ModInfix
	ModPrefix
	ModPostfix
	ModInternal
	ModInternalSet
	ModPrivate
	ModPrivateSet
	ModPublic
	ModPublicSet
	ModGenerated // synthesized by the analyzer itself, never written by a parser
)

// ModifierSet is the bitset attached to a Declaration, built by OR-ing the
// Modifier flags the parser recognized in source order.
type ModifierSet uint32

func (m ModifierSet) Has(mod Modifier) bool { return uint32(m)&uint32(mod) != 0 }

func (m ModifierSet) With(mod Modifier) ModifierSet { return ModifierSet(uint32(m) | uint32(mod)) }

// Count returns how many modifier bits are set.
func (m ModifierSet) Count() int {
	n := 0
	for b := ModifierSet(1); b != 0; b <<= 1 {
		if uint32(m)&uint32(b) != 0 {
			n++
		}
	}
	return n
}
