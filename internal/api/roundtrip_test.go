package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"year-planner/apperr"
	"year-planner/client"
	"year-planner/connmon"
	"year-planner/model"
	"year-planner/tabs"
)

// The tests here run the real client against the real router over a live
// listener, so the wire contract is exercised from both ends at once.

func newLiveClient(t *testing.T, token string) *client.Client {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(t, token))
	t.Cleanup(srv.Close)
	return client.New(client.Config{
		BaseURL:        srv.URL,
		Token:          token,
		Timeout:        2 * time.Second,
		RetryBaseDelay: time.Millisecond,
	})
}

func TestGoalRoundTrip(t *testing.T) {
	c := newLiveClient(t, "")
	ctx := context.Background()

	created, err := c.CreateGoal(ctx, model.Goal{Title: "Learn Go"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Completed)

	goals, err := c.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, *created, goals[0], "stored row must match the created one")

	completed := true
	updated, err := c.UpdateGoal(ctx, created.ID, model.GoalPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Learn Go", updated.Title)

	goals, err = c.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Completed)

	require.NoError(t, c.DeleteGoal(ctx, created.ID))

	goals, err = c.ListGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, err = c.UpdateGoal(ctx, created.ID, model.GoalPatch{Completed: &completed})
	assert.True(t, apperr.IsNotFound(err), "updating a deleted goal must report not found")
}

func TestYearLifecycleThroughClient(t *testing.T) {
	c := newLiveClient(t, "")
	ctx := context.Background()

	year, err := c.CreateYear(ctx, 2026)
	require.NoError(t, err)
	require.NoError(t, c.SeedYear(ctx, *year, client.DefaultTemplate()))

	months, err := c.ListMonths(ctx, year.ID)
	require.NoError(t, err)
	require.Len(t, months, 12)
	assert.Equal(t, "January", months[0].MonthName)

	ev, err := c.CreateCalendarEvent(ctx, year.ID, model.CalendarEvent{
		Date:  "2026-04-01",
		Event: "April fools",
	})
	require.NoError(t, err)
	assert.Equal(t, year.ID, ev.YearID)

	text := "April fools planning"
	updated, err := c.UpdateCalendarEvent(ctx, year.ID, ev.ID, model.CalendarEventPatch{Event: &text})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Event)
	assert.Equal(t, "2026-04-01", updated.Date)

	_, err = c.CreateYear(ctx, 2026)
	assert.True(t, apperr.IsConflict(err))
	_, err = c.CreateYear(ctx, -3)
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, c.DeleteYear(ctx, year.ID))

	_, err = c.ListCalendar(ctx, year.ID)
	assert.True(t, apperr.IsNotFound(err), "listing under a deleted year must report not found")

	years, err := c.ListYears(ctx)
	require.NoError(t, err)
	assert.Empty(t, years)
}

func TestReadingAuthorsThroughClient(t *testing.T) {
	c := newLiveClient(t, "")
	ctx := context.Background()

	first, err := c.CreateReading(ctx, model.ReadingInput{
		Title:   "The Go Programming Language",
		Authors: []string{"Alan Donovan", "Brian Kernighan"},
	})
	require.NoError(t, err)
	require.Len(t, first.Authors, 2)

	second, err := c.CreateReading(ctx, model.ReadingInput{
		Title:   "The Practice of Programming",
		Authors: []string{"Brian Kernighan"},
	})
	require.NoError(t, err)

	require.NoError(t, c.DeleteReading(ctx, first.ID))

	authors, err := c.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2, "author rows outlive the readings that introduced them")

	readings, err := c.ListReadings(ctx)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, second.ID, readings[0].ID)
	require.Len(t, readings[0].Authors, 1)
	assert.Equal(t, "Brian Kernighan", readings[0].Authors[0].Name)
}

func TestBearerTokenThroughClient(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, "hunter2"))
	t.Cleanup(srv.Close)

	wrong := client.New(client.Config{BaseURL: srv.URL, Token: "nope", Timeout: 2 * time.Second, RetryBaseDelay: time.Millisecond})
	_, err := wrong.ListGoals(context.Background())
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	// Health stays open so the monitor can probe before credentials load.
	require.NoError(t, wrong.Health(context.Background()))

	right := client.New(client.Config{BaseURL: srv.URL, Token: "hunter2", Timeout: 2 * time.Second, RetryBaseDelay: time.Millisecond})
	_, err = right.ListGoals(context.Background())
	require.NoError(t, err)
}

func TestFullStackTabResolution(t *testing.T) {
	c := newLiveClient(t, "")
	ctx := context.Background()

	_, err := c.CreateGoal(ctx, model.Goal{Title: "Ship the planner"})
	require.NoError(t, err)

	m := connmon.New(connmon.Config{Prober: c, ProbeInterval: time.Hour})
	r := tabs.New(tabs.Config{Client: c, Monitor: m})
	t.Cleanup(r.Close)

	// Before the first probe the link is assumed down: cache only.
	snap, started := r.Activate(ctx, tabs.TabGoals, 0, nil)
	assert.False(t, started)
	assert.True(t, snap.Stale)
	assert.Nil(t, snap.Rows)

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)
	require.Eventually(t, m.Connected, 2*time.Second, 10*time.Millisecond)

	done := make(chan tabs.Snapshot, 1)
	_, started = r.Activate(ctx, tabs.TabGoals, 0, func(s tabs.Snapshot) { done <- s })
	require.True(t, started)

	select {
	case s := <-done:
		require.NoError(t, s.Err)
		goals := s.Rows.([]model.Goal)
		require.Len(t, goals, 1)
		assert.Equal(t, "Ship the planner", goals[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("tab fetch never completed")
	}
}
