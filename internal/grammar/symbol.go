package grammar

const (
	// Epsilon is the canonical name of the empty symbol, ε.
	Epsilon = "ε"

	// EndMarker is the canonical name of the end-of-input symbol, $.
	EndMarker = "$"
)
