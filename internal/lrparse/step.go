package lrparse

import (
	"fmt"
	"strings"
)

// Step is a single row of the parse trace: a snapshot of the driver's state
// stack, the remaining (unconsumed) input, and a description of the action
// taken, taken immediately before the action executes.
type Step struct {
	Number    int
	StateStk  []int
	SymbolStk []string
	Remaining []string
	Action    string
}

// String renders the step the way a textbook trace table does: stack |
// input | action.
func (s Step) String() string {
	states := make([]string, len(s.StateStk))
	for i, st := range s.StateStk {
		states[i] = fmt.Sprintf("%d", st)
	}
	return fmt.Sprintf("%d: [%s] %s  |  %s  |  %s",
		s.Number,
		strings.Join(s.SymbolStk, " "),
		strings.Join(states, ""),
		strings.Join(s.Remaining, " "),
		s.Action,
	)
}
