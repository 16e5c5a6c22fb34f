package discussion

import "time"

// Timing constants for a discussion session. The defaults are related by
// EmitInterval = TotalDuration / (Rounds*rosterSize + 1): one emission slot
// is reserved beyond the final turn, so an emission landing after the last
// expected turn is tolerated rather than dropped.
const (
	TotalDuration = 60 * time.Second
	TickInterval  = time.Second
	EmitInterval  = 6 * time.Second
	SettleDelay   = 2 * time.Second
	Rounds        = 3
)

// MaxTurns is the full transcript length: Rounds passes over the roster.
const MaxTurns = Rounds * 3

// State is the sequencer's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleting:
		return "completing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// AccuracyFunc supplies the live accuracy percentage used in turn text.
// The sequencer never computes metrics itself.
type AccuracyFunc func() float64

// Sequencer is the timed discussion state machine. It is purely reactive:
// the host (a Runner in production, a test directly) delivers Tick,
// EmitTurn, and Finish inputs on a single logical timeline, so the
// Sequencer itself holds no timers and needs no locking.
type Sequencer struct {
	roster    []string
	accuracy  AccuracyFunc
	state     State
	remaining time.Duration
	turns     []Turn
}

// NewSequencer creates an idle sequencer. A nil roster gets the default
// three-participant panel; a nil accuracy func reads as zero.
func NewSequencer(roster []string, accuracy AccuracyFunc) *Sequencer {
	if len(roster) == 0 {
		roster = DefaultRoster()
	}
	if accuracy == nil {
		accuracy = func() float64 { return 0 }
	}
	return &Sequencer{
		roster:   roster,
		accuracy: accuracy,
		state:    StateIdle,
	}
}

// Start moves Idle to Running, initializing the countdown and an empty
// transcript. Starting a sequencer that is not idle is a no-op and returns
// false.
func (s *Sequencer) Start() bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateRunning
	s.remaining = TotalDuration
	s.turns = nil
	return true
}

// Tick decrements the countdown by one tick interval. When the countdown
// reaches zero the sequencer moves to Completing. Ticks outside Running
// are ignored.
func (s *Sequencer) Tick() {
	if s.state != StateRunning {
		return
	}
	s.remaining -= TickInterval
	if s.remaining <= 0 {
		s.remaining = 0
		s.state = StateCompleting
	}
}

// EmitTurn handles an emission timer firing. In Running, it appends the
// next turn, or moves to Completing without emitting once the transcript
// is full. A turn due in the same instant the countdown expired is still
// appended while Completing: the two timers are independent, and a turn
// must never be dropped solely because the countdown reached zero in the
// same tick.
func (s *Sequencer) EmitTurn() (Turn, bool) {
	if s.state != StateRunning && s.state != StateCompleting {
		return Turn{}, false
	}
	if len(s.turns) >= MaxTurns {
		if s.state == StateRunning {
			s.state = StateCompleting
		}
		return Turn{}, false
	}

	idx := len(s.turns)
	participant := s.roster[idx%len(s.roster)]
	round := idx/len(s.roster) + 1
	turn := Turn{
		ParticipantID: participant,
		Round:         round,
		Text:          TurnText(participant, round, s.accuracy()),
		SequenceIndex: idx,
	}
	s.turns = append(s.turns, turn)
	return turn, true
}

// Finish moves Completing to Done after the settle delay has elapsed and
// returns the accumulated transcript. Finishing from any other state
// returns nil.
func (s *Sequencer) Finish() []Turn {
	if s.state != StateCompleting {
		return nil
	}
	s.state = StateDone
	return s.Turns()
}

// State returns the current lifecycle state.
func (s *Sequencer) State() State { return s.state }

// Remaining returns the countdown time left, for display.
func (s *Sequencer) Remaining() time.Duration { return s.remaining }

// Turns returns a copy of the transcript so far.
func (s *Sequencer) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}
