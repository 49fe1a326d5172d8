package lrtable

import "fmt"

// ConflictKind distinguishes the two ways two ACTION entries can collide
// for the same (state, terminal) cell.
type ConflictKind int

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict records a single collision discovered while building the ACTION
// table. The grammar is not rejected when one is found; First records the
// action that was kept (first write wins), Second the one that lost.
type Conflict struct {
	Kind     ConflictKind
	State    int
	Terminal string
	First    Action
	Second   Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %q: kept %s, discarded %s", c.Kind, c.State, c.Terminal, c.First, c.Second)
}
