package discussion

import (
	"sync"
	"sync/atomic"
	"time"
)

// RunnerConfig wires a Runner. OnTurn and OnTick are optional; OnComplete
// receives the final transcript exactly once unless the runner is
// cancelled first. Callbacks are invoked from the runner's single
// goroutine, in order.
type RunnerConfig struct {
	Roster   []string
	Accuracy AccuracyFunc

	// Clock defaults to SystemClock. Tests inject a virtual clock.
	Clock Clock

	OnTick     func(remaining time.Duration)
	OnTurn     func(Turn)
	OnComplete func(turns []Turn)
}

// Runner drives a Sequencer with real timers: a countdown ticker, an
// emission ticker, and a one-shot settle timer, all serviced by one
// goroutine. Every exit path, including cancellation, releases all three,
// so no orphaned timer can emit a turn or fire completion after teardown.
type Runner struct {
	seq  *Sequencer
	cfg  RunnerConfig
	stop chan struct{}
	done chan struct{}

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRunner creates a Runner for one discussion session.
func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	return &Runner{
		seq:  NewSequencer(cfg.Roster, cfg.Accuracy),
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start begins the session. Calling Start again is a no-op.
func (r *Runner) Start() {
	r.startOnce.Do(func() {
		r.seq.Start()
		r.started.Store(true)
		go r.loop()
	})
}

// Cancel tears the session down and waits for the loop goroutine to
// exit, so once it returns no further turn or completion callback can be
// delivered. Cancelling a runner that never started, or cancelling
// twice, is a no-op.
func (r *Runner) Cancel() {
	r.stopOnce.Do(func() { close(r.stop) })
	if r.started.Load() {
		<-r.done
	}
}

// cancelled reports whether Cancel has been requested. The loop checks it
// after every select win: a ticker or timer value can already be buffered
// when stop closes, and select picks among ready cases at random, so the
// stop case alone is not enough to keep a late callback from firing.
func (r *Runner) cancelled() bool {
	select {
	case <-r.stop:
		return true
	default:
		return false
	}
}

func (r *Runner) loop() {
	defer close(r.done)

	tick := r.cfg.Clock.NewTicker(TickInterval)
	emit := r.cfg.Clock.NewTicker(EmitInterval)
	defer tick.Stop()
	defer emit.Stop()

	for r.seq.State() == StateRunning {
		select {
		case <-r.stop:
			return
		case <-tick.C():
			if r.cancelled() {
				return
			}
			r.seq.Tick()
			if r.cfg.OnTick != nil {
				r.cfg.OnTick(r.seq.Remaining())
			}
		case <-emit.C():
			if r.cancelled() {
				return
			}
			if turn, ok := r.seq.EmitTurn(); ok && r.cfg.OnTurn != nil {
				r.cfg.OnTurn(turn)
			}
		}
	}

	// The countdown and emission tickers are independent: an emission that
	// landed in the same instant as countdown exhaustion is still honored
	// before finalization.
	select {
	case <-emit.C():
		if r.cancelled() {
			return
		}
		if turn, ok := r.seq.EmitTurn(); ok && r.cfg.OnTurn != nil {
			r.cfg.OnTurn(turn)
		}
	default:
	}

	tick.Stop()
	emit.Stop()

	settle := r.cfg.Clock.NewTimer(SettleDelay)
	defer settle.Stop()

	select {
	case <-r.stop:
		return
	case <-settle.C():
		if r.cancelled() {
			return
		}
		turns := r.seq.Finish()
		if r.cfg.OnComplete != nil {
			r.cfg.OnComplete(turns)
		}
	}
}
