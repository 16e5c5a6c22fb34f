package discussion

import (
	"fmt"
	"strings"
)

// Panel participant identities, in speaking order.
const (
	ParticipantAnalyst  = "analyst"
	ParticipantExaminer = "examiner"
	ParticipantMentor   = "mentor"
)

// DefaultRoster returns the fixed three-participant speaking order.
func DefaultRoster() []string {
	return []string{ParticipantAnalyst, ParticipantExaminer, ParticipantMentor}
}

// accuracyToken is replaced with the live accuracy percentage (one decimal)
// wherever it appears in a script line. Only the analyst's opening line
// uses it; everything else is static.
const accuracyToken = "{accuracy}"

type scriptKey struct {
	participant string
	round       int
}

// script is the full fixed narrative, keyed by (participant, round). A
// lookup table rather than branching keeps the fallback path trivially
// total.
var script = map[scriptKey]string{
	{ParticipantAnalyst, 1}:  "Overall accuracy reads " + accuracyToken + "%. Let me trace where the misses cluster by difficulty.",
	{ParticipantExaminer, 1}: "The question mix covered all five bands, so the sample is fair. I want to see the hard-band answers.",
	{ParticipantMentor, 1}:   "Before we judge, remember this is a diagnostic. Gaps here are just the starting map for practice.",

	{ParticipantAnalyst, 2}:  "The breakdown is telling: the weakest band drags the composite more than raw speed does.",
	{ParticipantExaminer, 2}: "Agreed, though timing matters too. Quick wrong answers and slow right ones read very differently.",
	{ParticipantMentor, 2}:   "Either way the pattern is workable. Focused repetition on the weak band moves the level fastest.",

	{ParticipantAnalyst, 3}:  "Factoring accuracy, spread, and evidence size, I am ready to commit to a level.",
	{ParticipantExaminer, 3}: "No objection. The thresholds are fixed, so the call is mechanical from here.",
	{ParticipantMentor, 3}:   "Then let's settle it and hand over a recommendation worth acting on.",
}

// TurnText produces the narrative line for a participant in a round, given
// the live accuracy percentage. Requests outside the fixed roster/round
// space get a generic fallback line naming the participant; this never
// fails.
func TurnText(participantID string, round int, accuracy float64) string {
	line, ok := script[scriptKey{participantID, round}]
	if !ok {
		return fmt.Sprintf("%s considers the results quietly and yields the floor.", participantID)
	}
	return strings.ReplaceAll(line, accuracyToken, fmt.Sprintf("%.1f", accuracy))
}
