package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTFetcher_FetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bars/daily", r.URL.Path)
		assert.Equal(t, "RELIANCE.NS", r.URL.Query().Get("symbol"))
		assert.Equal(t, "Bearer sekret", r.Header.Get("Authorization"))
		// Out of order on purpose; the fetcher must sort chronologically.
		_, _ = w.Write([]byte(`[
			{"timestamp": 1718150400, "open": 101, "high": 103, "low": 100, "close": 102, "volume": 1200},
			{"timestamp": 1718064000, "open": 100, "high": 102, "low": 99, "close": 101, "volume": 1000}
		]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "sekret", "", 5*time.Second)
	bars, err := f.FetchDailyBars(context.Background(), "RELIANCE.NS")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
	assert.Equal(t, 101.0, bars[0].Close)
	assert.Equal(t, int64(1200), bars[1].Volume)
}

func TestRESTFetcher_NotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "", 5*time.Second)
	bars, err := f.FetchDailyBars(context.Background(), "GHOST.NS")
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestRESTFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "", 5*time.Second)
	_, err := f.FetchDailyBars(context.Background(), "RELIANCE.NS")
	assert.Error(t, err)
}
