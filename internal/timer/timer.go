// Package timer implements the pomodoro countdown state machine. The
// true countdown state is anchored to a wall-clock deadline rather
// than a decrementing counter, so a paused or suspended process does
// not desynchronize remaining time from real elapsed time.
package timer

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/satchel/pkg/types"
)

// Mode identifies one of the three pomodoro phases.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// Completion describes a finished countdown. CompletedWork is the total
// number of work sessions finished so far; TaskID is the linked task, if
// any, at the moment of completion.
type Completion struct {
	Mode          Mode
	Next          Mode
	CompletedWork int
	TaskID        string
	AutoStarted   bool
}

// State is a point-in-time snapshot of the machine.
type State struct {
	Mode          Mode
	ActiveMode    Mode
	Running       bool
	TimeLeft      int // seconds, for the viewed mode
	CompletedWork int
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Timer) { t.log = log.WithField("component", "timer") }
}

// WithOnComplete registers a callback invoked after each completed
// countdown. It runs outside the timer's lock.
func WithOnComplete(fn func(Completion)) Option {
	return func(t *Timer) { t.onComplete = fn }
}

// WithTickInterval overrides the background tick resolution.
func WithTickInterval(d time.Duration) Option {
	return func(t *Timer) { t.tickEvery = d }
}

// Timer is the countdown state machine. The viewed mode and the active
// (ticking) mode are independent: a caller may inspect break settings
// while the work countdown keeps running in the background.
type Timer struct {
	mu sync.Mutex

	config     types.TimerConfig
	mode       Mode
	activeMode Mode
	running    bool
	timeLeft   int          // seconds, display value for the viewed mode
	remaining  map[Mode]int // paused per-mode snapshots
	endTime    time.Time    // zero unless running
	completed  int          // finished work sessions
	taskID     string       // task credited on work completion

	now        func() time.Time
	onComplete func(Completion)
	log        logrus.FieldLogger
	tickEvery  time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	stop      chan struct{}
	done      chan struct{}
}

// New creates a timer in work mode with the configured work duration
// loaded and nothing running.
func New(config types.TimerConfig, opts ...Option) *Timer {
	t := &Timer{
		config:    config,
		mode:      ModeWork,
		remaining: make(map[Mode]int),
		now:       time.Now,
		log:       logrus.StandardLogger().WithField("component", "timer"),
		tickEvery: time.Second,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.timeLeft = t.duration(ModeWork)
	return t
}

// duration returns the configured full length of a mode in seconds.
func (t *Timer) duration(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return t.config.ShortBreakMinutes * 60
	case ModeLongBreak:
		return t.config.LongBreakMinutes * 60
	default:
		return t.config.WorkMinutes * 60
	}
}

// ceilSeconds converts a deadline delta to whole seconds, rounding up
// so the display never flashes zero while time actually remains.
func ceilSeconds(d time.Duration) int {
	ms := d.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int((ms + 999) / 1000)
}

// State returns a snapshot of the machine.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	timeLeft := t.timeLeft
	if t.running && t.mode == t.activeMode {
		timeLeft = ceilSeconds(t.endTime.Sub(t.now()))
	}
	return State{
		Mode:          t.mode,
		ActiveMode:    t.activeMode,
		Running:       t.running,
		TimeLeft:      timeLeft,
		CompletedWork: t.completed,
	}
}

// LinkTask associates a task whose session counter is bumped when a
// work countdown completes. An empty id clears the link.
func (t *Timer) LinkTask(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.taskID = id
}

// SetMode switches the viewed mode. Leaving a mode that is not the
// live countdown snapshots its progress; entering the live mode reads
// the remaining time from the deadline instead of any stale snapshot.
// Switching views never pauses the active countdown.
func (t *Timer) SetMode(newMode Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if newMode == t.mode {
		return
	}
	if !(t.running && t.mode == t.activeMode) {
		t.remaining[t.mode] = t.timeLeft
	}
	if t.running && newMode == t.activeMode {
		t.timeLeft = ceilSeconds(t.endTime.Sub(t.now()))
	} else if r, ok := t.remaining[newMode]; ok && r > 0 {
		t.timeLeft = r
	} else {
		t.timeLeft = t.duration(newMode)
	}
	t.mode = newMode
}

// SetRunning starts or pauses the countdown for the viewed mode.
// Pausing clears the deadline but keeps the active mode, so resuming
// continues the same session.
func (t *Timer) SetRunning(running bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if running {
		if t.running && t.activeMode == t.mode {
			return
		}
		// Starting the viewed mode preempts any other live countdown;
		// capture its true remaining time first.
		if t.running && !t.endTime.IsZero() {
			t.remaining[t.activeMode] = ceilSeconds(t.endTime.Sub(t.now()))
		}
		t.activeMode = t.mode
		t.running = true
		t.endTime = t.now().Add(time.Duration(t.timeLeft) * time.Second)
		return
	}
	if !t.running {
		return
	}
	if !t.endTime.IsZero() {
		rem := ceilSeconds(t.endTime.Sub(t.now()))
		t.remaining[t.activeMode] = rem
		if t.mode == t.activeMode {
			t.timeLeft = rem
		}
	}
	t.running = false
	t.endTime = time.Time{}
}

// SyncTime recomputes the displayed remaining time from the deadline.
// Call it whenever a view attaches after a gap in ticks. Viewing a
// mode other than the active one leaves the paused display untouched.
func (t *Timer) SyncTime() {
	t.mu.Lock()
	completion, fire := t.sync()
	t.mu.Unlock()
	if fire {
		t.fire(completion)
	}
}

// sync is SyncTime under the lock. It reports a completion to fire
// when the deadline has already passed.
func (t *Timer) sync() (Completion, bool) {
	if !t.running || t.endTime.IsZero() {
		return Completion{}, false
	}
	rem := ceilSeconds(t.endTime.Sub(t.now()))
	if t.mode == t.activeMode {
		t.timeLeft = rem
	}
	if rem > 0 {
		return Completion{}, false
	}
	return t.complete(), true
}

// complete finishes the active countdown. Caller holds the lock.
func (t *Timer) complete() Completion {
	finished := t.activeMode
	t.running = false
	t.endTime = time.Time{}
	t.remaining[finished] = t.duration(finished)

	var next Mode
	autoStart := false
	if finished == ModeWork {
		t.completed++
		if t.config.LongBreakInterval > 0 && t.completed%t.config.LongBreakInterval == 0 {
			next = ModeLongBreak
		} else {
			next = ModeShortBreak
		}
		autoStart = t.config.AutoStartBreaks
	} else {
		next = ModeWork
		autoStart = t.config.AutoStartWork
	}

	t.mode = next
	t.activeMode = next
	if r, ok := t.remaining[next]; ok && r > 0 {
		t.timeLeft = r
	} else {
		t.timeLeft = t.duration(next)
	}
	if autoStart {
		t.running = true
		t.endTime = t.now().Add(time.Duration(t.timeLeft) * time.Second)
	}

	return Completion{
		Mode:          finished,
		Next:          next,
		CompletedWork: t.completed,
		TaskID:        t.taskID,
		AutoStarted:   autoStart,
	}
}

// fire delivers a completion to the registered callback.
func (t *Timer) fire(c Completion) {
	t.log.WithFields(logrus.Fields{
		"mode":      c.Mode,
		"next":      c.Next,
		"completed": c.CompletedWork,
	}).Info("countdown complete")
	if t.onComplete != nil {
		t.onComplete(c)
	}
}

// Start launches the background tick loop. The loop runs independently
// of any attached view and is started at most once per Timer.
func (t *Timer) Start() {
	t.startOnce.Do(func() {
		t.mu.Lock()
		t.started = true
		t.mu.Unlock()
		go t.run()
	})
}

// Stop tears down the tick loop. Idempotent, and safe to call even if
// the loop was never started.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()
	if started {
		<-t.done
	}
}

func (t *Timer) run() {
	defer close(t.done)
	ticker := time.NewTicker(t.tickEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.mu.Lock()
			completion, fire := t.sync()
			t.mu.Unlock()
			if fire {
				t.fire(completion)
			}
		case <-t.stop:
			return
		}
	}
}
