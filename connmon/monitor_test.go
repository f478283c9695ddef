package connmon

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"year-planner/apperr"
	"year-planner/client"
)

type fakeProber struct {
	mu  sync.Mutex
	err error
}

func (p *fakeProber) Health(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakeProber) set(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

// drain collects every transition already delivered. probe runs its fan-out
// before returning, so after a direct probe call this sees everything.
func drain(ch <-chan Transition) []Transition {
	var out []Transition
	for {
		select {
		case tr := <-ch:
			out = append(out, tr)
		default:
			return out
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "disconnected", Disconnected.String())
	assert.Equal(t, "connected", Connected.String())
	assert.Equal(t, "reconnecting", Reconnecting.String())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestProbeLifecycle(t *testing.T) {
	p := &fakeProber{}
	m := New(Config{Prober: p})
	ch, cancel := m.Subscribe()
	defer cancel()

	require.Equal(t, Disconnected, m.State())
	assert.False(t, m.Connected())

	t.Run("first success walks through reconnecting", func(t *testing.T) {
		m.probe()

		trs := drain(ch)
		require.Len(t, trs, 2)
		assert.Equal(t, Disconnected, trs[0].From)
		assert.Equal(t, Reconnecting, trs[0].To)
		assert.Equal(t, Reconnecting, trs[1].From)
		assert.Equal(t, Connected, trs[1].To)
		assert.True(t, m.Connected())
	})

	t.Run("steady healthy probes stay quiet", func(t *testing.T) {
		m.probe()
		m.probe()

		assert.Empty(t, drain(ch))
		assert.Equal(t, Connected, m.State())
	})

	t.Run("failed probe drops the link", func(t *testing.T) {
		p.set(errors.New("dial tcp: connection refused"))
		m.probe()

		trs := drain(ch)
		require.Len(t, trs, 1)
		assert.Equal(t, Connected, trs[0].From)
		assert.Equal(t, Disconnected, trs[0].To)
		assert.False(t, m.Connected())
	})

	t.Run("probes keep failing without duplicate events", func(t *testing.T) {
		m.probe()

		trs := drain(ch)
		// Each failed cycle is one reconnect attempt: out and back.
		require.Len(t, trs, 2)
		assert.Equal(t, Reconnecting, trs[0].To)
		assert.Equal(t, Disconnected, trs[1].To)
	})

	t.Run("recovery emits connected exactly once", func(t *testing.T) {
		p.set(nil)
		m.probe()
		m.probe()

		trs := drain(ch)
		require.Len(t, trs, 2)
		assert.Equal(t, Reconnecting, trs[0].To)
		assert.Equal(t, Connected, trs[1].To)
	})
}

func TestReportFailure(t *testing.T) {
	p := &fakeProber{}
	m := New(Config{Prober: p})
	m.probe()
	require.True(t, m.Connected())
	ch, cancel := m.Subscribe()
	defer cancel()

	t.Run("server verdicts say nothing about the link", func(t *testing.T) {
		m.ReportFailure(apperr.NotFound("goal"))
		m.ReportFailure(apperr.Validation("year", "year_number must be positive"))

		assert.Empty(t, drain(ch))
		assert.True(t, m.Connected())
	})

	t.Run("transport failure drops the link immediately", func(t *testing.T) {
		m.ReportFailure(apperr.Timeout(errors.New("context deadline exceeded")))

		trs := drain(ch)
		require.Len(t, trs, 1)
		assert.Equal(t, Disconnected, trs[0].To)
	})

	t.Run("reports while already down are no-ops", func(t *testing.T) {
		m.ReportFailure(apperr.ConnectionRefused(errors.New("dial tcp")))

		assert.Empty(t, drain(ch))
		assert.Equal(t, Disconnected, m.State())
	})
}

func TestInvalidTransitionRejected(t *testing.T) {
	m := New(Config{Prober: &fakeProber{}})
	ch, cancel := m.Subscribe()
	defer cancel()

	// Disconnected can only move to Reconnecting; a straight jump to
	// Connected must be refused.
	m.transitionTo(Connected)

	assert.Equal(t, Disconnected, m.State())
	assert.Empty(t, drain(ch))
}

func TestSubscribeCancel(t *testing.T) {
	m := New(Config{Prober: &fakeProber{}})
	ch, cancel := m.Subscribe()

	cancel()
	_, ok := <-ch
	assert.False(t, ok, "cancel must close the channel")

	cancel() // second cancel is a no-op

	// A cancelled subscriber no longer receives anything.
	m.probe()
	assert.Equal(t, Connected, m.State())
}

func TestProbeHonoursCancelledContext(t *testing.T) {
	m := New(Config{Prober: &fakeProber{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()

	m.probe()

	assert.Equal(t, Disconnected, m.State())
}

func TestStartStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		io.WriteString(w, `{"status":"ok"}`)
	}))
	t.Cleanup(srv.Close)

	c := client.New(client.Config{BaseURL: srv.URL, Timeout: time.Second})
	m := New(Config{Prober: c, ProbeInterval: time.Hour})
	ch, cancel := m.Subscribe()
	defer cancel()

	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()
	assert.Error(t, m.Start(context.Background()), "second start must be rejected")

	deadline := time.After(2 * time.Second)
	for m.State() != Connected {
		select {
		case <-ch:
		case <-deadline:
			t.Fatal("monitor never reached connected")
		}
	}
	assert.True(t, m.Connected())
}
