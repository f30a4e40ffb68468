package analyzer

import (
	"strconv"

	"github.com/google/uuid"
)

// tempNamer hands out hygienic synthetic identifiers for tuple-pattern
// explosion (`let (a, b) = pair` becomes a hidden temporary holding the
// tuple plus two member-access bindings for a and b). Each name carries a
// uuid suffix so it can never collide with a name the source actually
// wrote, however the source happens to be named.
type tempNamer struct {
	n int
}

func newTempNamer() *tempNamer { return &tempNamer{} }

// next returns a fresh name of the form "$tuple_<n>_<uuid>". The counter
// keeps names stable and readable across a single analysis run; the uuid
// suffix is what actually guarantees hygiene.
func (t *tempNamer) next() string {
	t.n++
	return "$tuple_" + strconv.Itoa(t.n) + "_" + uuid.NewString()
}
