package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/orbit-recall/constants"
	"github.com/lixenwraith/orbit-recall/status"
)

// DriverConfig configures a Driver; zero fields take defaults
type DriverConfig struct {
	FrameInterval     time.Duration
	CountdownInterval time.Duration

	Rand   Rand
	Clock  TimeProvider
	Logger *zap.Logger
	Status *status.Registry
}

// Driver owns a Session on a single goroutine and schedules its motion and countdown
// All mutation happens inside Run; public methods post commands and wait for them
type Driver struct {
	session Session

	rng    Rand
	clock  TimeProvider
	logger *zap.Logger

	frameInterval     time.Duration
	countdownInterval time.Duration

	// Play scheduling, both non-nil exactly while the session is playing
	frameTicker     *time.Ticker
	countdownTicker *time.Ticker
	epoch           time.Time // Drift time origin
	lastFrame       time.Time

	listeners []Listener

	inbox   chan func()
	updates chan struct{}

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// Cached metric pointers
	statFrames  *atomic.Int64
	statTicks   *atomic.Int64
	statClicks  *atomic.Int64
	statMisses  *atomic.Int64
	statFound   *atomic.Int64
	statFrameMs *status.AtomicFloat
}

// NewDriver creates a driver holding a fresh level 1 session
// cfg.Rand is required; it is only ever used from the driver goroutine
func NewDriver(cfg DriverConfig) *Driver {
	if cfg.Rand == nil {
		panic("engine: DriverConfig.Rand is required")
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameInterval
	}
	if cfg.CountdownInterval <= 0 {
		cfg.CountdownInterval = constants.CountdownInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	return &Driver{
		session:           NewSession(cfg.Rand),
		rng:               cfg.Rand,
		clock:             cfg.Clock,
		logger:            cfg.Logger,
		frameInterval:     cfg.FrameInterval,
		countdownInterval: cfg.CountdownInterval,
		epoch:             cfg.Clock.Now(),
		inbox:             make(chan func()),
		updates:           make(chan struct{}, 1),
		stopChan:          make(chan struct{}),
		done:              make(chan struct{}),
		statFrames:        cfg.Status.Ints.Get("engine.frames"),
		statTicks:         cfg.Status.Ints.Get("engine.ticks"),
		statClicks:        cfg.Status.Ints.Get("session.clicks"),
		statMisses:        cfg.Status.Ints.Get("session.misses"),
		statFound:         cfg.Status.Ints.Get("session.found"),
		statFrameMs:       cfg.Status.Floats.Get("engine.frame_ms"),
	}
}

// Subscribe registers a listener, must be called before Run
func (d *Driver) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

// Updates signals that the session changed and a redraw is due
// Signals coalesce; read Snapshot after receiving one
func (d *Driver) Updates() <-chan struct{} {
	return d.updates
}

// Run processes commands and play timers until ctx is done or Stop is called
func (d *Driver) Run(ctx context.Context) {
	if !d.running.CompareAndSwap(false, true) {
		return
	}
	defer close(d.done)
	defer d.stopPlay()

	d.notify()

	for {
		// Nil channels disable the play timers outside of an attempt
		var frameC, countdownC <-chan time.Time
		if d.frameTicker != nil {
			frameC = d.frameTicker.C
			countdownC = d.countdownTicker.C
		}

		select {
		case <-ctx.Done():
			return
		case <-d.stopChan:
			return
		case cmd := <-d.inbox:
			cmd()
		case <-frameC:
			d.onFrame()
		case <-countdownC:
			d.onCountdown()
		}
	}
}

// Stop ends Run; safe to call more than once
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
}

// exec runs fn on the driver goroutine and waits for it
// Returns false when the driver is no longer running
func (d *Driver) exec(fn func()) bool {
	finished := make(chan struct{})
	select {
	case d.inbox <- func() {
		defer close(finished)
		fn()
	}:
	case <-d.done:
		return false
	}
	<-finished
	return true
}

// Snapshot returns a deep copy of the current session
func (d *Driver) Snapshot() Session {
	var s Session
	d.exec(func() {
		s = d.session.Clone()
	})
	return s
}

// Reveal presses or releases the reveal control
func (d *Driver) Reveal(show bool) {
	d.exec(func() {
		next := d.session.Reveal(show)
		if next.ShowTarget != d.session.ShowTarget || next.HasSeenTarget != d.session.HasSeenTarget {
			d.session = next
			d.notify()
		}
	})
}

// Start begins or retries the current level attempt
func (d *Driver) Start() bool {
	var ok bool
	d.exec(func() {
		var next Session
		next, ok = d.session.Start()
		if !ok {
			return
		}
		d.session = next
		d.syncPlay()
		d.logger.Info("attempt started", zap.Int("level", next.Level), zap.Int("circles", len(next.Circles)))
		d.emit(Event{Type: EventAttemptStarted, Level: next.Level, CircleID: -1, TotalScore: next.TotalScore})
		d.notify()
	})
	return ok
}

// Click submits a click on circle id
func (d *Driver) Click(id int) ClickResult {
	var res ClickResult
	d.exec(func() {
		var next Session
		next, res = d.session.Click(id)
		if !res.Accepted {
			return
		}
		d.session = next
		d.statClicks.Add(1)

		if !res.Correct {
			d.statMisses.Add(1)
			d.logger.Debug("miss", zap.Int("level", next.Level), zap.Int("circle", id), zap.Int("level_score", next.LevelScore))
			d.emit(Event{Type: EventMiss, Level: next.Level, CircleID: id, Points: res.Points, TotalScore: next.TotalScore})
			d.notify()
			return
		}

		d.statFound.Add(1)
		d.logger.Info("target found",
			zap.Int("level", next.Level),
			zap.Int("clicks", next.Clicks),
			zap.Int("level_score", next.LevelScore),
			zap.Int("total_score", next.TotalScore))
		d.emit(Event{Type: EventTargetFound, Level: next.Level, CircleID: id, Points: res.Points, TotalScore: next.TotalScore})
		if next.GameCompleted {
			d.logger.Info("game completed", zap.Int("total_score", next.TotalScore), zap.Int("performance", next.Performance()))
			d.emit(Event{Type: EventGameCompleted, Level: next.Level, CircleID: -1, TotalScore: next.TotalScore})
		}
		d.notify()
	})
	return res
}

// NextLevel advances after a found target
func (d *Driver) NextLevel() bool {
	var ok bool
	d.exec(func() {
		var next Session
		next, ok = d.session.NextLevel(d.rng)
		if !ok {
			return
		}
		d.session = next
		d.logger.Info("level advanced", zap.Int("level", next.Level))
		d.emit(Event{Type: EventLevelAdvanced, Level: next.Level, CircleID: -1, TotalScore: next.TotalScore})
		d.notify()
	})
	return ok
}

// Reset returns the session to level 1, cancelling any running attempt
func (d *Driver) Reset() {
	d.exec(func() {
		d.session = d.session.Reset(d.rng)
		d.syncPlay()
		d.logger.Info("session reset")
		d.emit(Event{Type: EventReset, Level: d.session.Level, CircleID: -1})
		d.notify()
	})
}

// ===== PLAY SCHEDULING =====

// syncPlay starts or stops both play timers to match session.IsPlaying
func (d *Driver) syncPlay() {
	if d.session.IsPlaying {
		d.startPlay()
		return
	}
	d.stopPlay()
}

func (d *Driver) startPlay() {
	d.stopPlay()
	d.lastFrame = d.clock.Now()
	d.frameTicker = time.NewTicker(d.frameInterval)
	d.countdownTicker = time.NewTicker(d.countdownInterval)
}

// stopPlay cancels both timers together
func (d *Driver) stopPlay() {
	if d.frameTicker != nil {
		d.frameTicker.Stop()
		d.frameTicker = nil
	}
	if d.countdownTicker != nil {
		d.countdownTicker.Stop()
		d.countdownTicker = nil
	}
}

func (d *Driver) onFrame() {
	now := d.clock.Now()
	deltaMs := float64(now.Sub(d.lastFrame)) / float64(time.Millisecond)
	d.lastFrame = now

	d.session = d.session.Frame(deltaMs, now.Sub(d.epoch).Seconds(), d.rng)
	d.statFrames.Add(1)
	d.statFrameMs.Set(deltaMs)
	d.notify()
}

func (d *Driver) onCountdown() {
	wasPlaying := d.session.IsPlaying
	d.session = d.session.Tick()
	d.statTicks.Add(1)

	if wasPlaying && !d.session.IsPlaying {
		d.stopPlay()
		d.logger.Info("time expired", zap.Int("level", d.session.Level))
		d.emit(Event{Type: EventTimeExpired, Level: d.session.Level, CircleID: -1, TotalScore: d.session.TotalScore})
	}
	d.notify()
}

// ===== NOTIFICATION =====

func (d *Driver) emit(ev Event) {
	for _, l := range d.listeners {
		l.HandleEvent(ev)
	}
}

func (d *Driver) notify() {
	select {
	case d.updates <- struct{}{}:
	default:
	}
}
