package evaluation

import (
	"fmt"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
)

// MaxJustificationLen is the hard cap on justification text, in runes.
const MaxJustificationLen = 100

// WeakestBand returns the difficulty band with the lowest correct ratio
// among bands that saw at least one question. Ties prefer the harder band.
// ok is false when no band has any questions.
func WeakestBand(m Metrics) (weakest quizbank.Difficulty, ok bool) {
	best := 2.0 // above any possible ratio
	for _, d := range quizbank.Difficulties() {
		bc := m.Breakdown[d]
		if bc.Total == 0 {
			continue
		}
		r := bc.Ratio()
		if r < best || (r == best && d.Rank() > weakest.Rank()) {
			best = r
			weakest = d
			ok = true
		}
	}
	return weakest, ok
}

// Justify produces the short rationale for an assigned level. The result
// never exceeds MaxJustificationLen runes; overlong text is truncated, not
// rejected.
func Justify(m Metrics, level Level) string {
	var text string
	if weakest, ok := WeakestBand(m); ok {
		text = fmt.Sprintf("%s: %.1f%% accuracy over %d questions; weakest on %s.",
			level.Title(), m.Accuracy, m.TotalQuestions, weakest.Label())
	} else {
		text = fmt.Sprintf("%s: no answered questions to evaluate.", level.Title())
	}
	return truncate(text, MaxJustificationLen)
}

// Recommend derives a next-step suggestion from the weakest band.
func Recommend(m Metrics) string {
	weakest, ok := WeakestBand(m)
	if !ok {
		return "Take a diagnostic quiz to establish a baseline before practicing."
	}

	bc := m.Breakdown[weakest]
	switch weakest {
	case quizbank.VeryEasy, quizbank.Easy:
		return fmt.Sprintf("Revisit the fundamentals: %d of %d %s questions were missed. Rebuild the basics before moving up.",
			bc.Total-bc.Correct, bc.Total, weakest.Label())
	case quizbank.Medium:
		return fmt.Sprintf("Core concepts need reinforcement: accuracy on %s questions was %.0f%%. Drill mid-level problems next.",
			weakest.Label(), bc.Ratio()*100)
	default:
		return fmt.Sprintf("Push into advanced territory: %s questions were the weak point at %.0f%%. Targeted hard practice will close the gap.",
			weakest.Label(), bc.Ratio()*100)
	}
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
