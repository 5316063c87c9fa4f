package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aarekaz/api/internal/http/handlers/profile"
	"github.com/Aarekaz/api/internal/storage/static"
	"github.com/Aarekaz/api/internal/types"
)

// newRouter builds the same route table main() registers, backed by a
// fresh static source.
func newRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	src, err := static.New()
	require.NoError(t, err)

	router := http.NewServeMux()
	router.HandleFunc("GET /{$}", profile.Status())
	router.HandleFunc("GET /info", profile.GetInfo(src))
	router.HandleFunc("GET /study", profile.GetStudy(src))

	return router
}

func get(t *testing.T, router *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestStatusReportsOnline(t *testing.T) {
	router := newRouter(t)
	start := time.Now()

	rec := get(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reply types.StatusReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))

	require.Equal(t, "online", reply.Status)
	require.False(t, reply.Timestamp.Before(start),
		"timestamp %v predates test start %v", reply.Timestamp, start)
}

func TestInfoReturnsHardcodedRecord(t *testing.T) {
	router := newRouter(t)

	rec := get(t, router, "/info")
	require.Equal(t, http.StatusOK, rec.Code)

	var info types.PersonalInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	require.Equal(t, "Your Name", info.Name)
	require.Equal(t, "Your Bio", info.Bio)
	require.Equal(t, "Available", info.CurrentStatus)
	require.False(t, info.LastUpdated.IsZero())
}

func TestInfoLastUpdatedIsStableAcrossRequests(t *testing.T) {
	router := newRouter(t)

	var first types.PersonalInfo
	require.NoError(t, json.Unmarshal(get(t, router, "/info").Body.Bytes(), &first))

	// A later request must see the exact same construction timestamp:
	// the record is built once at startup, never per request.
	time.Sleep(10 * time.Millisecond)

	var second types.PersonalInfo
	require.NoError(t, json.Unmarshal(get(t, router, "/info").Body.Bytes(), &second))

	require.True(t, first.LastUpdated.Equal(second.LastUpdated),
		"last_updated changed between requests: %v vs %v",
		first.LastUpdated, second.LastUpdated)
}

func TestInfoUnderConcurrentRequests(t *testing.T) {
	router := newRouter(t)

	const workers = 32
	results := make([]types.PersonalInfo, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/info", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			_ = json.Unmarshal(rec.Body.Bytes(), &results[i])
		}(i)
	}
	wg.Wait()

	// Every caller must observe the same fully-formed record — no torn
	// or partial values, no differing timestamps.
	for i := 1; i < workers; i++ {
		require.Equal(t, results[0].Name, results[i].Name)
		require.Equal(t, results[0].Bio, results[i].Bio)
		require.Equal(t, results[0].CurrentStatus, results[i].CurrentStatus)
		require.True(t, results[0].LastUpdated.Equal(results[i].LastUpdated))
	}
}

func TestStudyReturnsFullRecord(t *testing.T) {
	router := newRouter(t)

	rec := get(t, router, "/study")
	require.Equal(t, http.StatusOK, rec.Code)

	var study types.StudyInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &study))

	require.Equal(t, "Your University", study.Institution)
	require.Equal(t, "Your Course", study.Course)
	require.Equal(t, 2024, study.Year)
	require.Equal(t, map[string]string{
		"2024": "Dean's List",
		"2023": "Best Project Award",
	}, study.Achievements)
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	router := newRouter(t)

	rec := get(t, router, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWrongMethodReturnsMethodNotAllowed(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/info", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
