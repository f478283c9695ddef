package tabs

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"year-planner/apperr"
	"year-planner/client"
	"year-planner/connmon"
)

// Snapshot is what a tab renders: the rows last fetched for it, whether
// they are known stale, and the last fetch error if any. Rows hold the
// shared model slice for the tab's entity.
type Snapshot struct {
	Rows  any
	Stale bool
	Err   error
}

// LinkMonitor is the slice of the connection monitor the resolver needs.
type LinkMonitor interface {
	State() connmon.State
	Subscribe() (<-chan connmon.Transition, func())
	ReportFailure(err error)
}

// Config carries the resolver's collaborators.
type Config struct {
	Client *client.Client
	// Monitor, when set, gates fetches on link state and drives
	// revalidation after a reconnect.
	Monitor LinkMonitor
	Logger  *zerolog.Logger
}

type slotKey struct {
	tab   Tab
	scope Scope
}

// slot is the cache cell for one (tab, scope). dispatchSeq identifies the
// fetch allowed to write the slot; completions carrying an older seq are
// discarded on arrival.
type slot struct {
	rows        any
	loaded      bool
	stale       bool
	err         error
	inflight    bool
	dispatchSeq uint64
	waiters     []func(Snapshot)
}

func (s *slot) snapshot() Snapshot {
	return Snapshot{Rows: s.rows, Stale: s.stale, Err: s.err}
}

// Resolver is safe for concurrent use. The cache mutates only on the
// fetch-completion path.
type Resolver struct {
	client  *client.Client
	monitor LinkMonitor
	log     zerolog.Logger

	mu    sync.Mutex
	seq   uint64
	slots map[slotKey]*slot

	stopWatch func()
}

func New(cfg Config) *Resolver {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	r := &Resolver{
		client:  cfg.Client,
		monitor: cfg.Monitor,
		log:     log,
		slots:   make(map[slotKey]*slot),
	}
	if r.monitor != nil {
		ch, cancel := r.monitor.Subscribe()
		r.stopWatch = cancel
		go r.watch(ch)
	}
	return r
}

// Close stops the reconnect watcher. In-flight fetches finish on their own.
func (r *Resolver) Close() {
	if r.stopWatch != nil {
		r.stopWatch()
	}
}

// Activate is called when the user switches to a tab. It never blocks:
// the current snapshot comes back immediately, and the second return says
// whether a fetch is under way for this slot (freshly dispatched or
// joined). onDone, if given, fires once with the snapshot of whichever
// fetch ends up applying.
//
// While the link is down no fetch is dispatched and the snapshot comes
// back flagged stale; onDone is never called.
func (r *Resolver) Activate(ctx context.Context, tab Tab, scope Scope, onDone func(Snapshot)) (Snapshot, bool) {
	entry, ok := tabTable[tab]
	if !ok {
		return Snapshot{Err: apperr.Validation("tab", "unknown tab")}, false
	}
	if entry.scoped && scope == 0 {
		return Snapshot{Err: apperr.Validation(entry.name, "year scope required")}, false
	}
	if !entry.scoped && scope != 0 {
		return Snapshot{Err: apperr.Validation(entry.name, "unexpected year scope")}, false
	}

	key := slotKey{tab: tab, scope: scope}

	r.mu.Lock()
	s := r.slots[key]
	if s == nil {
		s = &slot{}
		r.slots[key] = s
	}

	if r.monitor != nil && r.monitor.State() != connmon.Connected {
		if s.loaded {
			s.stale = true
		}
		snap := s.snapshot()
		snap.Stale = true
		r.mu.Unlock()
		return snap, false
	}

	if s.inflight {
		if onDone != nil {
			s.waiters = append(s.waiters, onDone)
		}
		snap := s.snapshot()
		r.mu.Unlock()
		return snap, true
	}

	r.seq++
	seq := r.seq
	s.dispatchSeq = seq
	s.inflight = true
	if onDone != nil {
		s.waiters = append(s.waiters, onDone)
	}
	snap := s.snapshot()
	r.mu.Unlock()

	go r.fetch(ctx, key, entry, seq)
	return snap, true
}

// Invalidate drops the cached rows for a slot, typically after a direct
// mutation came back not-found. A fetch already in flight keeps running
// and repopulates the slot with whatever the backend says now.
func (r *Resolver) Invalidate(tab Tab, scope Scope) {
	key := slotKey{tab: tab, scope: scope}
	r.mu.Lock()
	if s := r.slots[key]; s != nil {
		s.rows, s.loaded, s.stale, s.err = nil, false, false, nil
		if !s.inflight {
			delete(r.slots, key)
		}
	}
	r.mu.Unlock()
}

func (r *Resolver) fetch(ctx context.Context, key slotKey, entry tabEntry, seq uint64) {
	rows, err := entry.fetch(ctx, r.client, uint(key.scope))
	if err != nil && r.monitor != nil && apperr.IsTransport(err) {
		r.monitor.ReportFailure(err)
	}
	r.complete(key, seq, rows, err)
}

// complete applies one fetch result. Only the latest dispatched fetch for
// the slot may write; anything older lost a supersede race and is dropped.
func (r *Resolver) complete(key slotKey, seq uint64, rows any, err error) {
	r.mu.Lock()
	s := r.slots[key]
	if s == nil || seq != s.dispatchSeq {
		r.mu.Unlock()
		r.log.Debug().Str("tab", key.tab.String()).Uint64("seq", seq).
			Msg("discarding superseded fetch result")
		return
	}

	s.inflight = false
	waiters := s.waiters
	s.waiters = nil

	if err != nil {
		s.err = err
		if apperr.IsNotFound(err) {
			// The scope target vanished mid-flight; nothing to show.
			s.rows, s.loaded, s.stale = nil, false, false
		}
	} else {
		s.rows = rows
		s.loaded = true
		s.stale = false
		s.err = nil
	}
	snap := s.snapshot()
	r.mu.Unlock()

	for _, w := range waiters {
		w(snap)
	}
}

// watch turns each completed reconnection into one revalidation sweep.
func (r *Resolver) watch(ch <-chan connmon.Transition) {
	for tr := range ch {
		if tr.From == connmon.Reconnecting && tr.To == connmon.Connected {
			r.revalidate()
		}
	}
}

// revalidate re-fetches every slot that holds rows or had a fetch in
// flight when the link dropped. In-flight fetches are superseded, not
// joined: their results would predate the outage.
func (r *Resolver) revalidate() {
	type job struct {
		key   slotKey
		entry tabEntry
		seq   uint64
	}
	var jobs []job

	r.mu.Lock()
	for key, s := range r.slots {
		if !s.loaded && !s.inflight {
			continue
		}
		r.seq++
		s.dispatchSeq = r.seq
		s.inflight = true
		jobs = append(jobs, job{key: key, entry: tabTable[key.tab], seq: r.seq})
	}
	r.mu.Unlock()

	for _, j := range jobs {
		go r.fetch(context.Background(), j.key, j.entry, j.seq)
	}
	if len(jobs) > 0 {
		r.log.Info().Int("slots", len(jobs)).Msg("revalidating tabs after reconnect")
	}
}
