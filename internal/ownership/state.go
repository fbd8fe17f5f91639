package ownership

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// State is the ownership state of a variable.
type State uint8

//go:generate go tool stringer -type State -linecomment
const (
	// Owned indicates the variable holds its value.
	Owned State = iota // owned
	// Moved indicates the value was passed away and may not be used.
	Moved // moved
)

// slot is the arena entry of one live variable.
type slot struct {
	v       *types.Var
	state   State
	movedAt syntax.Pos // where the value was last moved
}

// snapshot is a copy of the arena taken at a branch point.
// Entry i belongs to the variable with arena index i.
type snapshot []slot

// arena holds the ownership state of every live variable, indexed in
// declaration order. Variables of an inner scope always follow those of
// the enclosing scopes, so popping a scope truncates the arena.
type arena struct {
	slots []slot
}

func (a *arena) alloc(v *types.Var) int {
	a.slots = append(a.slots, slot{v: v, state: Owned})
	return len(a.slots) - 1
}

// truncate releases the variables at index n and above, and returns them.
func (a *arena) truncate(n int) []slot {
	released := a.slots[n:]
	a.slots = a.slots[:n]
	return released
}

func (a *arena) len() int { return len(a.slots) }

func (a *arena) snapshot() snapshot {
	return append(snapshot(nil), a.slots...)
}

// restore resets the variables captured by s to their captured states.
// Variables declared after s was taken keep their state.
func (a *arena) restore(s snapshot) {
	copy(a.slots, s)
}

// merge marks moved every variable that was moved in s.
func (a *arena) merge(s snapshot) {
	n := min(len(s), len(a.slots))
	for i := 0; i < n; i++ {
		if s[i].state == Moved && a.slots[i].state != Moved {
			a.slots[i].state = Moved
			a.slots[i].movedAt = s[i].movedAt
		}
	}
}
