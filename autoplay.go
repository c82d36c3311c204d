package reveal

import "time"

// AutoplayState is the state of the autoplay sweep.
type AutoplayState uint8

const (
	AutoplayRunning  AutoplayState = iota // advancing one step per tick
	AutoplayDwelling                      // holding at 100 before reversing
	AutoplayPaused                        // temporary pause; resumes after the cooldown
	AutoplayDisabled                      // terminal; a manual interaction happened
)

func (s AutoplayState) String() string {
	switch s {
	case AutoplayRunning:
		return "running"
	case AutoplayDwelling:
		return "dwelling"
	case AutoplayPaused:
		return "paused"
	case AutoplayDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// AutoplayConfig holds the sweep timings.
type AutoplayConfig struct {
	Disabled     bool          // start in the terminal Disabled state
	Interval     time.Duration // time per tick
	Step         float64       // percent moved per tick
	DwellTicks   int           // ticks held at 100 before reversing
	Cooldown     time.Duration // temporary pause length before the sweep restarts
	StartPercent float64       // sweep origin, also used on restart
}

// DefaultAutoplayConfig returns the stock sweep: 1% every 50ms, a 60 tick
// hold at 100 and a 3s cooldown, starting from the midpoint.
func DefaultAutoplayConfig() AutoplayConfig {
	return AutoplayConfig{
		Interval:     50 * time.Millisecond,
		Step:         1,
		DwellTicks:   60,
		Cooldown:     3 * time.Second,
		StartPercent: midpointPercent,
	}
}

// Autoplay is the autonomous sweep. It oscillates a reveal percentage between
// 0 and 100, holding at 100 for DwellTicks ticks. Only the 100 boundary
// dwells; reaching 0 reverses on the same tick.
//
// Autoplay owns no timers. Callers advance it with Step (real elapsed time)
// or Tick (one fixed interval); the cooldown is a counter drained by Step,
// so entering Disabled discards any pending resume.
type Autoplay struct {
	cfg AutoplayConfig

	state     AutoplayState
	direction float64
	percent   float64
	dwell     int
	cooldown  time.Duration
	acc       time.Duration

	// OnPosition receives every percentage the sweep emits.
	OnPosition func(percent float64)
	// OnStateChange fires after every state transition.
	OnStateChange func(from, to AutoplayState)
}

// NewAutoplay creates a sweep in the Running state (or Disabled when
// cfg.Disabled is set). Zero-valued timings fall back to the defaults.
func NewAutoplay(cfg AutoplayConfig) *Autoplay {
	def := DefaultAutoplayConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.DwellTicks < 0 {
		cfg.DwellTicks = 0
	}
	if cfg.Cooldown < 0 {
		cfg.Cooldown = 0
	}
	cfg.StartPercent = ClampPercent(cfg.StartPercent)

	a := &Autoplay{cfg: cfg, state: AutoplayRunning}
	a.restart()
	if cfg.Disabled {
		a.state = AutoplayDisabled
	}
	return a
}

// State returns the current state.
func (a *Autoplay) State() AutoplayState { return a.state }

// Percent returns the sweep's own position.
func (a *Autoplay) Percent() float64 { return a.percent }

// Direction returns +1 while sweeping toward 100 and -1 toward 0.
func (a *Autoplay) Direction() int { return int(a.direction) }

// DwellRemaining returns the ticks left in the current hold.
func (a *Autoplay) DwellRemaining() int { return a.dwell }

// CooldownRemaining returns the time left before a temporary pause ends.
func (a *Autoplay) CooldownRemaining() time.Duration { return a.cooldown }

// Config returns the effective configuration.
func (a *Autoplay) Config() AutoplayConfig { return a.cfg }

// Active reports whether the sweep currently drives the reveal percentage.
func (a *Autoplay) Active() bool {
	return a.state == AutoplayRunning || a.state == AutoplayDwelling
}

// Step advances the sweep by dt of elapsed time, running one Tick per full
// Interval. While Paused, dt drains the cooldown instead; when it expires the
// sweep restarts from StartPercent and the leftover time is discarded.
func (a *Autoplay) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	switch a.state {
	case AutoplayDisabled:
		return
	case AutoplayPaused:
		a.cooldown -= dt
		if a.cooldown > 0 {
			return
		}
		a.cooldown = 0
		a.restart()
		a.setState(AutoplayRunning)
		return
	}

	a.acc += dt
	for a.acc >= a.cfg.Interval && a.Active() {
		a.acc -= a.cfg.Interval
		a.Tick()
	}
}

// Tick runs exactly one sweep interval. It is a no-op while Paused or Disabled.
func (a *Autoplay) Tick() {
	switch a.state {
	case AutoplayDwelling:
		a.dwell--
		if a.dwell <= 0 {
			a.dwell = 0
			a.setState(AutoplayRunning)
		}
	case AutoplayRunning:
		a.percent += a.direction * a.cfg.Step
		switch {
		case a.percent >= 100:
			a.percent = 100
			a.emit()
			a.direction = -1
			a.dwell = a.cfg.DwellTicks
			if a.dwell > 0 {
				a.setState(AutoplayDwelling)
			}
		case a.percent <= 0:
			a.percent = 0
			a.emit()
			a.direction = 1
		default:
			a.emit()
		}
	}
}

// Pause stops the sweep. A manual pause moves to the terminal Disabled state
// and cancels any pending cooldown. A temporary pause moves to Paused and
// (re)arms the cooldown. Pausing a Disabled sweep does nothing.
func (a *Autoplay) Pause(manual bool) {
	if a.state == AutoplayDisabled {
		return
	}
	if manual {
		a.cooldown = 0
		a.acc = 0
		a.setState(AutoplayDisabled)
		return
	}
	a.cooldown = a.cfg.Cooldown
	a.acc = 0
	a.setState(AutoplayPaused)
}

// restart resets the sweep position to its origin, as a freshly started sweep.
func (a *Autoplay) restart() {
	a.direction = 1
	a.percent = a.cfg.StartPercent
	a.dwell = 0
	a.acc = 0
}

func (a *Autoplay) emit() {
	if a.OnPosition != nil {
		a.OnPosition(a.percent)
	}
}

func (a *Autoplay) setState(to AutoplayState) {
	from := a.state
	a.state = to
	if from != to && a.OnStateChange != nil {
		a.OnStateChange(from, to)
	}
}
