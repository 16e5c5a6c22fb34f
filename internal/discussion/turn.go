package discussion

// Turn is one emitted narrative message from the evaluation panel.
// Turns are created at emission time, appended in order, and never
// reordered or mutated afterward.
type Turn struct {
	// ParticipantID is the roster entry that spoke.
	ParticipantID string

	// Round is the 1-based round this turn belongs to (1..3).
	Round int

	// Text is the narrative line, from the script table.
	Text string

	// SequenceIndex is the 0-based position in the full turn sequence (0..8).
	SequenceIndex int
}
