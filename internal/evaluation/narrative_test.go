package evaluation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/session"
)

func TestJustify_NeverExceedsCap(t *testing.T) {
	cases := [][]session.AnswerRecord{
		nil,
		{answer(quizbank.VeryHard, false, 1000)},
		nineAnswers(),
		metricsAnswers(0, 10),
		metricsAnswers(10, 10),
	}
	for _, answers := range cases {
		m := ComputeMetrics(answers)
		j := Justify(m, AssignLevel(m))
		if utf8.RuneCountInString(j) > MaxJustificationLen {
			t.Errorf("justification %q is %d runes, cap is %d",
				j, utf8.RuneCountInString(j), MaxJustificationLen)
		}
		if j == "" {
			t.Error("justification should never be empty")
		}
	}
}

func metricsAnswers(correct, total int) []session.AnswerRecord {
	var answers []session.AnswerRecord
	for i := 0; i < total; i++ {
		answers = append(answers, answer(quizbank.Medium, i < correct, 1000))
	}
	return answers
}

func TestJustify_NamesLevelAndWeakBand(t *testing.T) {
	m := ComputeMetrics(nineAnswers())
	j := Justify(m, AssignLevel(m))
	if !strings.Contains(j, "Grandmaster") {
		t.Errorf("justification %q does not name the level", j)
	}
	if !strings.Contains(j, "Hard") {
		t.Errorf("justification %q does not name the weakest band", j)
	}
}

func TestWeakestBand_TiePrefersHarder(t *testing.T) {
	// Easy and Hard both at 50%: the tie goes to Hard.
	answers := []session.AnswerRecord{
		answer(quizbank.Easy, true, 1000),
		answer(quizbank.Easy, false, 1000),
		answer(quizbank.Hard, true, 1000),
		answer(quizbank.Hard, false, 1000),
		answer(quizbank.Medium, true, 1000),
	}
	m := ComputeMetrics(answers)
	weakest, ok := WeakestBand(m)
	if !ok {
		t.Fatal("expected a weakest band")
	}
	if weakest != quizbank.Hard {
		t.Errorf("weakest = %s, want hard", weakest)
	}
}

func TestWeakestBand_IgnoresEmptyBands(t *testing.T) {
	answers := []session.AnswerRecord{
		answer(quizbank.Medium, true, 1000),
	}
	weakest, ok := WeakestBand(ComputeMetrics(answers))
	if !ok || weakest != quizbank.Medium {
		t.Errorf("weakest = %s ok=%v, want medium", weakest, ok)
	}

	if _, ok := WeakestBand(ComputeMetrics(nil)); ok {
		t.Error("expected no weakest band for empty metrics")
	}
}

func TestRecommend_TargetsWeakBand(t *testing.T) {
	answers := []session.AnswerRecord{
		answer(quizbank.VeryEasy, false, 1000),
		answer(quizbank.Hard, true, 1000),
	}
	rec := Recommend(ComputeMetrics(answers))
	if !strings.Contains(rec, "Very Easy") {
		t.Errorf("recommendation %q does not reference the weak band", rec)
	}

	if rec := Recommend(ComputeMetrics(nil)); rec == "" {
		t.Error("empty metrics should still yield a recommendation")
	}
}

func TestEvaluate_Total(t *testing.T) {
	// Must not panic or error shape for any of these.
	for _, answers := range [][]session.AnswerRecord{nil, {}, nineAnswers()} {
		ev := Evaluate(answers)
		if ev.Justification == "" || ev.Recommendation == "" {
			t.Error("expected narrative text for every evaluation")
		}
		if ev.Confidence < 0 || ev.Confidence > 100 {
			t.Errorf("confidence %d out of range", ev.Confidence)
		}
	}
}
