package quizbank

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// DefaultQuizSize is the number of questions in a diagnostic quiz.
const DefaultQuizSize = 10

// ErrUnknownTopic is returned when a quiz is requested for a topic the bank
// does not contain.
var ErrUnknownTopic = errors.New("unknown topic")

// Picker assembles diagnostic quizzes from the bank. Selection is
// deterministic for a given seed, which keeps quiz composition testable.
type Picker struct {
	bank *Bank
	rng  *rand.Rand
}

// NewPicker creates a Picker over bank, seeded for shuffling.
func NewPicker(bank *Bank, seed int64) *Picker {
	return &Picker{
		bank: bank,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// BuildQuiz selects size questions for topic, spread as evenly as possible
// across the five difficulty bands. When a band has too few questions the
// shortfall is backfilled from the remaining pool, hardest-first, so the
// quiz still reaches the requested size whenever the bank allows it.
// Question order is shuffled; no question appears twice.
func (p *Picker) BuildQuiz(topic string, size int) ([]Question, error) {
	pool := p.bank.QuestionsFor(topic)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	if size <= 0 {
		size = DefaultQuizSize
	}
	if size > len(pool) {
		size = len(pool)
	}

	byBand := make(map[Difficulty][]Question)
	for _, q := range pool {
		byBand[q.Difficulty] = append(byBand[q.Difficulty], q)
	}

	// Shuffle bands in fixed order: ranging over the map would consume the
	// seeded RNG in a different order each run.
	bands := Difficulties()
	for _, d := range bands {
		p.shuffle(byBand[d])
	}

	perBand := size / len(bands)

	picked := make([]Question, 0, size)
	taken := make(map[string]bool)
	for _, d := range bands {
		qs := byBand[d]
		for i := 0; i < perBand && i < len(qs); i++ {
			picked = append(picked, qs[i])
			taken[qs[i].ID] = true
		}
	}

	// Backfill any shortfall from the unused remainder, hardest-first, so a
	// sparse band skews the quiz up rather than down.
	if len(picked) < size {
		var rest []Question
		for _, q := range pool {
			if !taken[q.ID] {
				rest = append(rest, q)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool {
			return rest[i].Difficulty.Rank() > rest[j].Difficulty.Rank()
		})
		for _, q := range rest {
			if len(picked) >= size {
				break
			}
			picked = append(picked, q)
			taken[q.ID] = true
		}
	}

	p.shuffle(picked)
	return picked, nil
}

func (p *Picker) shuffle(qs []Question) {
	p.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
