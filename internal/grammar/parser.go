// Package grammar implements C1 (the grammar model), C2 (the textual
// grammar parser), and C3 (the FIRST engine).
package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/clrerrors"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/set"
)

// arrow is the literal token separating a rule's LHS from its alternatives.
const arrow = "->"

// epsilonMarkers are the tokens that, as a whole alternative, denote an
// ε-production (§4.1, §6).
var epsilonMarkers = map[string]bool{
	"":   true,
	"ε":  true,
	"''": true,
	`""`: true,
}

// rawRule is one parsed "LHS -> ALT1 | ALT2 | ..." line, prior to
// terminal/non-terminal classification.
type rawRule struct {
	lhs  string
	alts [][]string
}

// Parse parses grammar text per §4.1/§6 and returns the augmented Grammar.
// Non-empty lines are production rules of the form "LHS -> ALT1 | ALT2 |
// ...", with alternatives separated by "|" and symbols within an
// alternative separated by whitespace. Symbol names are normalized to
// Unicode NFC so that visually identical names written with different
// combining-character sequences compare equal.
//
// Returns a clrerrors error wrapping ErrEmptyGrammar if no productions
// parse, or ErrMalformedRule if a line lacks the "->" token or has an empty
// LHS.
func Parse(text string) (Grammar, error) {
	var rules []rawRule

	lines := strings.Split(text, "\n")
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, arrow, 2)
		if len(parts) != 2 {
			return Grammar{}, clrerrors.MalformedRule(lineNo+1, line)
		}

		lhs := normalize(strings.TrimSpace(parts[0]))
		if lhs == "" {
			return Grammar{}, clrerrors.MalformedRule(lineNo+1, line)
		}

		var alts [][]string
		for _, altText := range strings.Split(parts[1], "|") {
			alts = append(alts, parseAlternative(altText))
		}

		rules = append(rules, rawRule{lhs: lhs, alts: alts})
	}

	if len(rules) == 0 {
		return Grammar{}, clrerrors.EmptyGrammar()
	}

	return build(rules)
}

// parseAlternative splits one "|"-delimited alternative into its symbols,
// recognizing the empty-production markers of §4.1.
func parseAlternative(altText string) []string {
	trimmed := strings.TrimSpace(altText)
	if epsilonMarkers[trimmed] {
		return nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 1 && epsilonMarkers[fields[0]] {
		return nil
	}

	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = normalize(f)
	}
	return out
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

// build classifies symbols, augments the grammar with a fresh start
// production, and assembles the final Grammar (§4.1).
func build(rules []rawRule) (Grammar, error) {
	lhsNames := set.NewStrings()
	for _, r := range rules {
		lhsNames.Add(r.lhs)
	}

	terminals := set.NewStrings()
	nonTerminals := set.NewStrings()
	for _, r := range rules {
		nonTerminals.Add(r.lhs)
		for _, alt := range r.alts {
			for _, sym := range alt {
				if !lhsNames.Has(sym) {
					terminals.Add(sym)
				}
			}
		}
	}

	origStart := rules[0].lhs
	augStart := UniqueAugmentedName(origStart, nonTerminals)
	nonTerminals.Add(augStart)

	productions := make([]Production, 0, 1)
	productions = append(productions, Production{Index: 0, LHS: augStart, RHS: []string{origStart}})

	for _, r := range rules {
		for _, alt := range r.alts {
			productions = append(productions, Production{
				Index: len(productions),
				LHS:   r.lhs,
				RHS:   alt,
			})
		}
	}

	g := New(productions, augStart, origStart, terminals, nonTerminals)
	if err := g.Validate(); err != nil {
		return Grammar{}, clrerrors.New("grammar built from input text is inconsistent", err)
	}
	return g, nil
}
