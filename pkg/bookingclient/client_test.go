package bookingclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/latest"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, 5*time.Second)
}

func TestRecommendation(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/spaces/recommendation", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"kind": "best_fit",
			"requiredCount": 40,
			"best": {"spaceId": 3, "name": "Conference Room", "capacity": 45, "surplus": 5},
			"form": {"options": [], "bannerKind": "recommend", "submitEnabled": true, "submitLabel": "Request booking"}
		}`))
	})

	rec, err := client.Recommendation(context.Background(), "40")

	require.NoError(t, err)
	assert.Equal(t, "best_fit", rec.Kind)
	require.NotNil(t, rec.Best)
	assert.Equal(t, int64(3), rec.Best.SpaceID)
	assert.Equal(t, 5, rec.Best.Surplus)
	assert.True(t, rec.Form.SubmitEnabled)
}

func TestRecommendation_RawInputPassedThrough(t *testing.T) {
	var gotCount string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotCount = r.URL.Query().Get("count")
		_, _ = w.Write([]byte(`{"kind": "empty", "requiredCount": 0, "form": {}}`))
	})

	rec, err := client.Recommendation(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", gotCount)
	assert.Equal(t, "empty", rec.Kind)
}

func TestUnavailableDates(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/spaces/3/unavailable-dates", r.URL.Path)
		_, _ = w.Write([]byte(`{"spaceId": 3, "dates": ["2026-09-10", "2026-09-15"]}`))
	})

	dates, err := client.UnavailableDates(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-10", "2026-09-15"}, dates.Dates)
}

func TestDaySlots(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/spaces/3/day-slots", r.URL.Path)
		assert.Equal(t, "2026-09-10", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`{
			"spaceId": 3, "date": "2026-09-10", "blocked": false,
			"intervals": [{"startTime": "10:00", "endTime": "12:00", "status": "approved"}]
		}`))
	})

	slots, err := client.DaySlots(context.Background(), 3, "2026-09-10")

	require.NoError(t, err)
	require.Len(t, slots.Intervals, 1)
	assert.Equal(t, "10:00", slots.Intervals[0].StartTime)
}

func TestDaySlots_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "space not found"}`, http.StatusNotFound)
	})

	_, err := client.DaySlots(context.Background(), 99, "2026-09-10")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecommendation_StaleResponseDiscarded(t *testing.T) {
	// Hold the first request until a second one has been issued, so its
	// response comes back for a superseded input.
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var once sync.Once

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		count := r.URL.Query().Get("count")
		if count == "40" {
			once.Do(func() { close(firstArrived) })
			<-releaseFirst
		}
		_, _ = w.Write([]byte(`{"kind": "no_fit", "requiredCount": ` + count + `, "form": {}}`))
	})

	type result struct {
		rec *Recommendation
		err error
	}
	firstDone := make(chan result, 1)

	go func() {
		rec, err := client.Recommendation(context.Background(), "40")
		firstDone <- result{rec, err}
	}()

	<-firstArrived

	rec, err := client.Recommendation(context.Background(), "500")
	require.NoError(t, err)
	assert.Equal(t, 500, rec.RequiredCount)

	close(releaseFirst)
	first := <-firstDone
	assert.ErrorIs(t, first.err, latest.ErrStale)
	assert.Nil(t, first.rec)
}

func TestGuardsAreIndependent(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/spaces/recommendation":
			_, _ = w.Write([]byte(`{"kind": "empty", "requiredCount": 0, "form": {}}`))
		default:
			_, _ = w.Write([]byte(`{"spaceId": 3, "dates": []}`))
		}
	})

	// A newer recommendation must not invalidate an in-flight dates
	// lookup.
	_, err := client.Recommendation(context.Background(), "")
	require.NoError(t, err)

	dates, err := client.UnavailableDates(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dates.SpaceID)
}
