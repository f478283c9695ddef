// Package connmon watches backend reachability through periodic health
// probes and exposes the link state as a small state machine. Components
// subscribe to transitions; nothing is queued for replay while the link is
// down — the monitor only answers "is the backend there right now".
package connmon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"year-planner/apperr"
)

// State is the link state visible to the UI and the tab resolver.
type State int

const (
	// Disconnected is the initial state: the backend is assumed unreachable
	// until a probe proves otherwise.
	Disconnected State = iota
	// Connected: the last probe succeeded.
	Connected
	// Reconnecting: a probe is being attempted from the disconnected side.
	Reconnecting
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// validNext is the closed transition table. Anything outside it is a
// programming error and is rejected.
var validNext = map[State][]State{
	Disconnected: {Reconnecting},
	Reconnecting: {Connected, Disconnected},
	Connected:    {Disconnected},
}

// Transition is one observed state change.
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Prober is the health check the monitor drives. The sync client satisfies
// it with its ungated Health method.
type Prober interface {
	Health(ctx context.Context) error
}

// Config carries the explicit settings for one monitor. Zero fields fall
// back to defaults.
type Config struct {
	Prober Prober
	// ProbeInterval is the cadence between probes, connected or not.
	ProbeInterval time.Duration
	// ProbeTimeout bounds a single probe. Capped at the interval so probes
	// cannot pile up.
	ProbeTimeout time.Duration
	Logger       *zerolog.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = 5 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 3 * time.Second
	}
	if cfg.ProbeTimeout > cfg.ProbeInterval {
		cfg.ProbeTimeout = cfg.ProbeInterval
	}
}

// Monitor is safe for concurrent use.
type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
	cron     *cron.Cron

	mu      sync.Mutex
	state   State
	probing bool
	started bool
	ctx     context.Context
	subs    map[int]chan Transition
	nextSub int
}

func New(cfg Config) *Monitor {
	cfg.setDefaults()
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Monitor{
		prober:   cfg.Prober,
		interval: cfg.ProbeInterval,
		timeout:  cfg.ProbeTimeout,
		log:      log,
		cron:     cron.New(),
		state:    Disconnected,
		ctx:      context.Background(),
		subs:     make(map[int]chan Transition),
	}
}

// Start schedules probes at the configured interval and fires one right
// away, so callers learn the initial reachability without waiting a tick.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return fmt.Errorf("monitor already started")
	}
	m.started = true
	m.ctx = ctx
	m.mu.Unlock()

	if _, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.interval), m.probe); err != nil {
		return fmt.Errorf("schedule probe: %w", err)
	}
	m.cron.Start()
	go m.probe()
	return nil
}

// Stop halts the probe schedule and waits for an in-flight probe job to
// finish.
func (m *Monitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// State returns the current link state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connected reports whether the link is usable right now. It satisfies the
// client's link-state gate.
func (m *Monitor) Connected() bool {
	return m.State() == Connected
}

// Subscribe returns a channel of future transitions and a cancel func.
// Delivery is buffered and non-blocking: a subscriber that falls behind
// loses events rather than stalling the monitor. The channel is closed on
// cancel.
func (m *Monitor) Subscribe() (<-chan Transition, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Transition, 8)
	m.subs[id] = ch
	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// ReportFailure lets the client short-circuit the next probe: a transport
// failure on a user request drops the link immediately. Non-transport
// errors (server verdicts like not-found) say nothing about the link and
// are ignored.
func (m *Monitor) ReportFailure(err error) {
	if !apperr.IsTransport(err) {
		return
	}
	if m.State() == Connected {
		m.transitionTo(Disconnected)
	}
}

// probe runs one health check and applies the resulting transitions. Ticks
// that land while a probe is still in flight are skipped.
func (m *Monitor) probe() {
	m.mu.Lock()
	if m.probing {
		m.mu.Unlock()
		return
	}
	m.probing = true
	from := m.state
	parent := m.ctx
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.probing = false
		m.mu.Unlock()
	}()

	if parent.Err() != nil {
		return
	}
	if from == Disconnected {
		m.transitionTo(Reconnecting)
	}

	ctx, cancel := context.WithTimeout(parent, m.timeout)
	err := m.prober.Health(ctx)
	cancel()

	if err != nil {
		m.log.Debug().Err(err).Msg("probe failed")
		m.transitionTo(Disconnected)
		return
	}
	// A failure reported mid-probe wins over this success; the next probe
	// cycle settles it.
	if m.State() == Reconnecting {
		m.transitionTo(Connected)
	}
}

// transitionTo applies one state change, logs it and fans it out to the
// subscribers. Same-state calls are no-ops; transitions outside the table
// are rejected.
func (m *Monitor) transitionTo(to State) {
	m.mu.Lock()
	from := m.state
	if from == to {
		m.mu.Unlock()
		return
	}
	allowed := false
	for _, next := range validNext[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		m.mu.Unlock()
		m.log.Warn().Str("from", from.String()).Str("to", to.String()).
			Msg("rejected invalid state transition")
		return
	}
	m.state = to
	tr := Transition{From: from, To: to, At: time.Now()}
	for _, ch := range m.subs {
		select {
		case ch <- tr:
		default:
		}
	}
	m.mu.Unlock()

	m.log.Info().Str("from", from.String()).Str("to", to.String()).
		Msg("link state changed")
}
