package quizbank

import "testing"

func TestCheckAnswer_Numeric(t *testing.T) {
	q := Question{Format: FormatNumeric, Answer: "18"}

	cases := []struct {
		input string
		want  bool
	}{
		{"18", true},
		{" 18 ", true},
		{"018", true},
		{"18.0", true},
		{"19", false},
		{"", false},
		{"eighteen", false},
	}

	for _, tc := range cases {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := Question{
		Format:  FormatMultipleChoice,
		Choices: []string{"1/2", "1/3", "2/1", "1/4"},
		Answer:  "1/2",
	}

	cases := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"1", true},  // index of the correct choice
		{"2", false}, // index of a wrong choice
		{"1/3", false},
		{"5", false}, // out-of-range index falls through to text match
		{"", false},
	}

	for _, tc := range cases {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDifficulty_RankOrdering(t *testing.T) {
	ds := Difficulties()
	for i := 1; i < len(ds); i++ {
		if ds[i-1].Rank() >= ds[i].Rank() {
			t.Errorf("rank(%s) = %d not below rank(%s) = %d",
				ds[i-1], ds[i-1].Rank(), ds[i], ds[i].Rank())
		}
	}
	if Difficulty("bogus").Rank() != -1 {
		t.Error("unknown difficulty should rank -1")
	}
}
