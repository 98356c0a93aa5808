package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_ReturnsBody(t *testing.T) {
	feed := icsFeed(vevent("1", "Football vs. Springfield", ":20251004T180000Z"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, srv.Client())
	assert.Equal(t, srv.URL, f.URL())

	body, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, feed, body)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestFetch_RejectsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<!DOCTYPE html><html><body>Sign in</body></html>"))
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFeed)
	assert.Contains(t, err.Error(), "HTML")
}

func TestFetch_RejectsNonCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a calendar"))
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrInvalidFeed)
}

func TestFetch_AcceptsBOM(t *testing.T) {
	feed := "\ufeff" + icsFeed()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL, nil).Fetch(context.Background())
	assert.NoError(t, err)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewFetcher(url, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestFetch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(icsFeed()))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(srv.URL, nil).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
