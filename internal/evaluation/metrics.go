package evaluation

import (
	"math"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/session"
)

// BandCount tallies correctness within one difficulty band.
type BandCount struct {
	Correct int
	Total   int
}

// Ratio returns Correct/Total, or 0 for an empty band.
func (b BandCount) Ratio() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Total)
}

// Metrics are the aggregate figures derived from a session's answers.
// Immutable once computed.
type Metrics struct {
	TotalQuestions     int
	TotalCorrect       int
	Accuracy           float64 // percentage, one decimal
	AverageTimeSeconds int
	Breakdown          map[quizbank.Difficulty]BandCount
}

// ComputeMetrics derives Metrics from answers. It is total: a nil or empty
// answer set yields all-zero metrics with a fully zero-initialized
// breakdown rather than an error.
func ComputeMetrics(answers []session.AnswerRecord) Metrics {
	m := Metrics{
		Breakdown: make(map[quizbank.Difficulty]BandCount, 5),
	}
	for _, d := range quizbank.Difficulties() {
		m.Breakdown[d] = BandCount{}
	}

	m.TotalQuestions = len(answers)
	if m.TotalQuestions == 0 {
		return m
	}

	var totalMs int64
	for _, a := range answers {
		if a.IsCorrect {
			m.TotalCorrect++
		}
		totalMs += int64(a.TimeSpentMs)

		bc := m.Breakdown[a.Difficulty]
		bc.Total++
		if a.IsCorrect {
			bc.Correct++
		}
		m.Breakdown[a.Difficulty] = bc
	}

	m.Accuracy = round1(float64(m.TotalCorrect) / float64(m.TotalQuestions) * 100)
	m.AverageTimeSeconds = int(math.Round(float64(totalMs) / float64(m.TotalQuestions) / 1000))
	return m
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
