package lrparse

import (
	"fmt"
	"strings"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/clrerrors"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
)

// Result is the outcome of running the driver over a token stream: the
// full step trace (useful regardless of outcome), whether the input was
// accepted, the resulting parse tree when it was, and the error that
// stopped the driver when it wasn't.
type Result struct {
	Steps    []Step
	Accepted bool
	Tree     *Node
	Err      error
}

// Run executes the shift/reduce driver of §4.8 against tbl for the given
// token stream. tokens should not include the end-of-input marker; Run
// appends it internally. Every step taken, including the one that fails,
// is recorded in the returned Result's Steps.
func Run(g grammar.Grammar, tbl lrtable.Table, tokens []string) Result {
	input := append(append([]string(nil), tokens...), grammar.EndMarker)

	stateStk := []int{0}
	symbolStk := []string{}
	var nodeStk []*Node

	var steps []Step
	pos := 0
	stepNum := 0

	record := func(action string) {
		steps = append(steps, Step{
			Number:    stepNum,
			StateStk:  append([]int(nil), stateStk...),
			SymbolStk: append([]string(nil), symbolStk...),
			Remaining: append([]string(nil), input[pos:]...),
			Action:    action,
		})
		stepNum++
	}

	for {
		state := stateStk[len(stateStk)-1]
		lookahead := input[pos]

		act := tbl.ActionAt(state, lookahead)

		switch act.Kind {
		case lrtable.Shift:
			record(fmt.Sprintf("shift %d", act.State))
			stateStk = append(stateStk, act.State)
			symbolStk = append(symbolStk, lookahead)
			nodeStk = append(nodeStk, leaf(lookahead))
			pos++

		case lrtable.Reduce:
			prod := g.Production(act.Production)
			record(fmt.Sprintf("reduce %s", prod.String()))

			var children []*Node
			if prod.IsEpsilon() {
				children = []*Node{epsilonLeaf()}
			} else {
				n := len(prod.RHS)
				stateStk = stateStk[:len(stateStk)-n]
				symbolStk = symbolStk[:len(symbolStk)-n]
				children = append(children, nodeStk[len(nodeStk)-n:]...)
				nodeStk = nodeStk[:len(nodeStk)-n]
			}

			top := stateStk[len(stateStk)-1]
			j, ok := tbl.GotoAt(top, prod.LHS)
			if !ok {
				return Result{
					Steps: steps,
					Err:   clrerrors.New(fmt.Sprintf("state %d, symbol %q", top, prod.LHS), clrerrors.ErrGoto),
				}
			}

			stateStk = append(stateStk, j)
			symbolStk = append(symbolStk, prod.LHS)
			nodeStk = append(nodeStk, &Node{Symbol: prod.LHS, Children: children})

		case lrtable.Accept:
			record("accept")
			return Result{
				Steps:    steps,
				Accepted: true,
				Tree:     nodeStk[len(nodeStk)-1],
			}

		default:
			record("error")
			expected := tbl.ExpectedTerminals(state)
			msg := fmt.Sprintf("state %d, unexpected token %q, expected one of: %s", state, lookahead, strings.Join(expected, ", "))
			return Result{
				Steps: steps,
				Err:   clrerrors.New(msg, clrerrors.ErrSyntax),
			}
		}
	}
}
