package evaluation

import "math"

// Level is an expertise level. The four variants are strictly ordered:
// Beginner < Apprentice < Pro < Grandmaster.
type Level int

const (
	Beginner Level = iota
	Apprentice
	Pro
	Grandmaster
)

// Accuracy band boundaries, in percent. The four bands are contiguous and
// cover [0,100]: anything below apprenticeMin is Beginner, anything at or
// above grandmasterMin is Grandmaster.
const (
	apprenticeMin  = 40.0
	proMin         = 60.0
	grandmasterMin = 80.0
)

// String returns the stable identifier used in storage and logs.
func (l Level) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Apprentice:
		return "apprentice"
	case Pro:
		return "pro"
	case Grandmaster:
		return "grandmaster"
	default:
		return "beginner"
	}
}

// Title returns the display form, e.g. "Grandmaster".
func (l Level) Title() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Apprentice:
		return "Apprentice"
	case Pro:
		return "Pro"
	case Grandmaster:
		return "Grandmaster"
	default:
		return "Beginner"
	}
}

// ParseLevel maps a stored identifier back to a Level. Unknown strings
// parse as Beginner.
func ParseLevel(s string) Level {
	switch s {
	case "apprentice":
		return Apprentice
	case "pro":
		return Pro
	case "grandmaster":
		return Grandmaster
	default:
		return Beginner
	}
}

// AssignLevel maps metrics to a level. Monotonic in accuracy: a higher
// accuracy never yields a lower level. A session with no questions is
// always Beginner.
func AssignLevel(m Metrics) Level {
	if m.TotalQuestions == 0 {
		return Beginner
	}
	switch {
	case m.Accuracy >= grandmasterMin:
		return Grandmaster
	case m.Accuracy >= proMin:
		return Pro
	case m.Accuracy >= apprenticeMin:
		return Apprentice
	default:
		return Beginner
	}
}

// Confidence scores how much evidence backs the assigned level, 0-100.
// It grows with both accuracy and question count: a 10-question session at
// a given accuracy is trusted fully, shorter sessions proportionally less.
func Confidence(m Metrics) int {
	if m.TotalQuestions == 0 {
		return 0
	}
	evidence := float64(m.TotalQuestions) / 10
	if evidence > 1 {
		evidence = 1
	}
	c := int(math.Round(m.Accuracy * evidence))
	if c > 100 {
		c = 100
	}
	if c < 0 {
		c = 0
	}
	return c
}
