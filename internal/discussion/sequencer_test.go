package discussion

import (
	"strings"
	"testing"
)

func TestSequencer_FullTranscript(t *testing.T) {
	s := NewSequencer(nil, func() float64 { return 88.9 })
	if !s.Start() {
		t.Fatal("Start() = false, want true")
	}

	roster := DefaultRoster()
	for i := 0; i < MaxTurns; i++ {
		turn, ok := s.EmitTurn()
		if !ok {
			t.Fatalf("EmitTurn %d failed", i)
		}
		if turn.SequenceIndex != i {
			t.Errorf("turn %d: SequenceIndex = %d", i, turn.SequenceIndex)
		}
		if want := roster[i%3]; turn.ParticipantID != want {
			t.Errorf("turn %d: participant = %q, want %q", i, turn.ParticipantID, want)
		}
		if want := i/3 + 1; turn.Round != want {
			t.Errorf("turn %d: round = %d, want %d", i, turn.Round, want)
		}
		if turn.Text == "" {
			t.Errorf("turn %d: empty text", i)
		}
	}

	if s.State() != StateRunning {
		t.Fatalf("state after 9 turns = %s, want running", s.State())
	}

	// The reserved tenth emission slot transitions to Completing instead
	// of emitting.
	if _, ok := s.EmitTurn(); ok {
		t.Error("expected no turn beyond the cap")
	}
	if s.State() != StateCompleting {
		t.Errorf("state = %s, want completing", s.State())
	}

	turns := s.Finish()
	if len(turns) != MaxTurns {
		t.Fatalf("transcript length = %d, want %d", len(turns), MaxTurns)
	}
	if s.State() != StateDone {
		t.Errorf("state = %s, want done", s.State())
	}

	wantRounds := []int{1, 1, 1, 2, 2, 2, 3, 3, 3}
	for i, turn := range turns {
		if turn.Round != wantRounds[i] {
			t.Errorf("turn %d round = %d, want %d", i, turn.Round, wantRounds[i])
		}
	}
}

func TestSequencer_CountdownExhaustion(t *testing.T) {
	s := NewSequencer(nil, nil)
	s.Start()

	ticks := int(TotalDuration / TickInterval)
	for i := 0; i < ticks-1; i++ {
		s.Tick()
		if s.State() != StateRunning {
			t.Fatalf("completed early after %d ticks", i+1)
		}
	}
	s.Tick()
	if s.State() != StateCompleting {
		t.Errorf("state after %d ticks = %s, want completing", ticks, s.State())
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", s.Remaining())
	}
}

func TestSequencer_SameInstantTurnNotDropped(t *testing.T) {
	s := NewSequencer(nil, nil)
	s.Start()

	for i := 0; i < int(TotalDuration/TickInterval); i++ {
		s.Tick()
	}
	if s.State() != StateCompleting {
		t.Fatalf("state = %s, want completing", s.State())
	}

	// A turn scheduled for the same instant the countdown expired must
	// still be appended before finalization.
	turn, ok := s.EmitTurn()
	if !ok {
		t.Fatal("turn due at countdown exhaustion was dropped")
	}
	if turn.SequenceIndex != 0 {
		t.Errorf("SequenceIndex = %d, want 0", turn.SequenceIndex)
	}
	if got := s.Finish(); len(got) != 1 {
		t.Errorf("transcript length = %d, want 1", len(got))
	}
}

func TestSequencer_MisuseIsNoOp(t *testing.T) {
	s := NewSequencer(nil, nil)

	// Inputs before Start are ignored.
	s.Tick()
	if _, ok := s.EmitTurn(); ok {
		t.Error("EmitTurn before Start should not emit")
	}
	if got := s.Finish(); got != nil {
		t.Error("Finish before Start should return nil")
	}

	if !s.Start() {
		t.Fatal("first Start failed")
	}
	if s.Start() {
		t.Error("second Start should be a no-op")
	}

	// Finish directly from Running is ignored.
	if got := s.Finish(); got != nil {
		t.Error("Finish from Running should return nil")
	}
	if s.State() != StateRunning {
		t.Errorf("state = %s, want running", s.State())
	}
}

func TestSequencer_TurnsReturnsCopy(t *testing.T) {
	s := NewSequencer(nil, nil)
	s.Start()
	s.EmitTurn()

	turns := s.Turns()
	turns[0].Text = "tampered"
	if s.Turns()[0].Text == "tampered" {
		t.Error("Turns() exposed internal slice")
	}
}

func TestTurnText_AnalystOpeningUsesLiveAccuracy(t *testing.T) {
	text := TurnText(ParticipantAnalyst, 1, 72.5)
	if !strings.Contains(text, "72.5%") {
		t.Errorf("analyst round 1 text %q missing accuracy", text)
	}

	// Only analyst round 1 is dynamic.
	if a, b := TurnText(ParticipantExaminer, 1, 10), TurnText(ParticipantExaminer, 1, 90); a != b {
		t.Error("examiner text should not depend on accuracy")
	}
	if a, b := TurnText(ParticipantAnalyst, 2, 10), TurnText(ParticipantAnalyst, 2, 90); a != b {
		t.Error("analyst round 2 text should not depend on accuracy")
	}
}

func TestTurnText_FallbackNamesParticipant(t *testing.T) {
	cases := []struct {
		participant string
		round       int
	}{
		{"moderator", 1},
		{ParticipantAnalyst, 0},
		{ParticipantMentor, 4},
	}
	for _, tc := range cases {
		text := TurnText(tc.participant, tc.round, 50)
		if text == "" {
			t.Errorf("(%s, %d): empty fallback", tc.participant, tc.round)
		}
		if !strings.Contains(text, tc.participant) {
			t.Errorf("(%s, %d): fallback %q does not name the participant",
				tc.participant, tc.round, text)
		}
	}
}

func TestSequencer_EmissionReadsAccuracyAtEmitTime(t *testing.T) {
	acc := 25.0
	s := NewSequencer(nil, func() float64 { return acc })
	s.Start()

	turn, _ := s.EmitTurn()
	if !strings.Contains(turn.Text, "25.0%") {
		t.Errorf("turn text %q missing live accuracy", turn.Text)
	}
	acc = 75.0 // later turns would see the updated figure
}
