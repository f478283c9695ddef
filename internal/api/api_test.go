package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"year-planner/internal/repository"
	"year-planner/model"
)

func newTestRouter(t *testing.T, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	return NewRouter(NewServer(db, token, zerolog.Nop()), []string{"*"})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

type wireError struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

func createYear(t *testing.T, r http.Handler, number int) model.Year {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/years", gin.H{"year_number": number})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[model.Year](t, w)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestYearRoutes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		r := newTestRouter(t, "")

		year := createYear(t, r, 2026)
		assert.NotZero(t, year.ID)
		assert.Equal(t, 2026, year.YearNumber)

		w := doJSON(t, r, http.MethodGet, "/years", nil)
		require.Equal(t, http.StatusOK, w.Code)
		years := decode[[]model.Year](t, w)
		require.Len(t, years, 1)

		w = doJSON(t, r, http.MethodPatch, "/years/1", gin.H{"year_number": 2027})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 2027, decode[model.Year](t, w).YearNumber)

		w = doJSON(t, r, http.MethodDelete, "/years/1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/years/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decode[wireError](t, w).Kind)
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		r := newTestRouter(t, "")
		createYear(t, r, 2026)

		w := doJSON(t, r, http.MethodPost, "/years", gin.H{"year_number": 2026})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decode[wireError](t, w).Kind)
	})

	t.Run("invalid payloads are rejected", func(t *testing.T) {
		r := newTestRouter(t, "")
		createYear(t, r, 2026)

		for _, body := range []gin.H{{}, {"year_number": 0}, {"year_number": -3}} {
			w := doJSON(t, r, http.MethodPost, "/years", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
			assert.Equal(t, "validation", decode[wireError](t, w).Kind)
		}

		w := doJSON(t, r, http.MethodPatch, "/years/1", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, r, http.MethodPatch, "/years/nope", gin.H{"year_number": 2027})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScopedRoutes(t *testing.T) {
	t.Run("calendar round trip", func(t *testing.T) {
		r := newTestRouter(t, "")
		year := createYear(t, r, 2026)

		w := doJSON(t, r, http.MethodPost, "/years/1/calendar",
			gin.H{"date": "2026-02-14", "event": "dinner"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ev := decode[model.CalendarEvent](t, w)
		assert.Equal(t, year.ID, ev.YearID)

		w = doJSON(t, r, http.MethodGet, "/years/1/calendar", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, decode[[]model.CalendarEvent](t, w), 1)

		w = doJSON(t, r, http.MethodPatch, "/years/1/calendar/1", gin.H{"event": "brunch"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "brunch", decode[model.CalendarEvent](t, w).Event)
		assert.Equal(t, "2026-02-14", decode[model.CalendarEvent](t, w).Date)

		w = doJSON(t, r, http.MethodDelete, "/years/1/calendar/1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/years/1/calendar/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("the year in the path wins over the body", func(t *testing.T) {
		r := newTestRouter(t, "")
		createYear(t, r, 2026)
		createYear(t, r, 2027)

		w := doJSON(t, r, http.MethodPost, "/years/1/calendar",
			gin.H{"date": "2026-02-14", "event": "dinner", "year_id": 2})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(1), decode[model.CalendarEvent](t, w).YearID)
	})

	t.Run("unknown year is 404", func(t *testing.T) {
		r := newTestRouter(t, "")

		w := doJSON(t, r, http.MethodGet, "/years/42/calendar", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, r, http.MethodPost, "/years/42/calendar",
			gin.H{"date": "2026-02-14", "event": "dinner"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decode[wireError](t, w)
		assert.Equal(t, "not_found", body.Kind)
		assert.Contains(t, body.Error, "year")
	})

	t.Run("malformed bodies and params are 400", func(t *testing.T) {
		r := newTestRouter(t, "")
		createYear(t, r, 2026)

		// missing event
		w := doJSON(t, r, http.MethodPost, "/years/1/calendar", gin.H{"date": "2026-02-14"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// garbage date
		w = doJSON(t, r, http.MethodPost, "/years/1/calendar",
			gin.H{"date": "14/02/2026", "event": "dinner"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// blank field in a patch
		w = doJSON(t, r, http.MethodPost, "/years/1/calendar",
			gin.H{"date": "2026-02-14", "event": "dinner"})
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(t, r, http.MethodPatch, "/years/1/calendar/1", gin.H{"event": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// non-numeric and zero ids
		w = doJSON(t, r, http.MethodGet, "/years/zero/calendar", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = doJSON(t, r, http.MethodDelete, "/years/1/calendar/0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("month names are validated", func(t *testing.T) {
		r := newTestRouter(t, "")
		createYear(t, r, 2026)

		w := doJSON(t, r, http.MethodPost, "/years/1/monthly_plans",
			gin.H{"month": "Juneuary", "task": "swim"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, r, http.MethodPost, "/years/1/monthly_plans",
			gin.H{"month": "June", "task": "swim"})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestGoalRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodPost, "/goals", gin.H{"title": "ship it"})
	require.Equal(t, http.StatusCreated, w.Code)
	goal := decode[model.Goal](t, w)
	assert.False(t, goal.Completed)

	w = doJSON(t, r, http.MethodPatch, "/goals/1", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[model.Goal](t, w).Completed)

	w = doJSON(t, r, http.MethodPost, "/goals", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/goals/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.Goal](t, w))
}

func TestReadingRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodPost, "/reading",
		gin.H{"title": "Book One", "authors": []string{"First Author", "Second Author"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reading := decode[model.Reading](t, w)
	require.Len(t, reading.Authors, 2)

	w = doJSON(t, r, http.MethodPatch, "/reading/1",
		gin.H{"status": "reading", "authors": []string{"Second Author"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[model.Reading](t, w)
	assert.Equal(t, "reading", updated.Status)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, "Second Author", updated.Authors[0].Name)

	w = doJSON(t, r, http.MethodGet, "/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	authors := decode[[]model.Author](t, w)
	require.Len(t, authors, 2)

	w = doJSON(t, r, http.MethodDelete, "/authors/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/reading/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The linked author row survives the reading delete.
	w = doJSON(t, r, http.MethodGet, "/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]model.Author](t, w), 1)
}

func TestWorkRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodPost, "/work", gin.H{"work_name": "acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	work := decode[model.Work](t, w)

	// The body cannot smuggle a different work id.
	w = doJSON(t, r, http.MethodPost, "/work/1/notes",
		gin.H{"note_text": "standup", "work_id": 99})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	note := decode[model.WorkNote](t, w)
	assert.Equal(t, work.ID, note.WorkID)
	assert.False(t, note.CreatedAt.IsZero())

	w = doJSON(t, r, http.MethodGet, "/work/1/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]model.WorkNote](t, w), 1)

	w = doJSON(t, r, http.MethodGet, "/work/7/notes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/work/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/work", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.Work](t, w))
}

func TestAuth(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	send := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/years", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decode[wireError](t, w).Kind)

	w = send("wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = send("s3cret")
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays open for probes.
	w = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
