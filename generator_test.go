package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/games-board/pkg/models"
)

var fixedNow = time.Date(2025, 10, 1, 16, 0, 0, 0, time.UTC)

func feedWith(events ...string) string {
	body := "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//games-board//test//EN\n" +
		strings.Join(events, "\n") + "\nEND:VCALENDAR\n"
	return strings.ReplaceAll(body, "\n", "\r\n")
}

func game(uid, summary, dtstart string, extra ...string) string {
	lines := append([]string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:20250901T000000Z",
		"SUMMARY:" + summary,
		"DTSTART" + dtstart,
	}, extra...)
	return strings.Join(append(lines, "END:VEVENT"), "\n")
}

func newTestGenerator(t *testing.T, feedURL string, client *http.Client, mutate func(*models.Config)) (*Generator, string) {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.FeedURL = feedURL
	cfg.OutputPath = filepath.Join(t.TempDir(), "public", "games.html")
	if mutate != nil {
		mutate(cfg)
	}

	gen, err := NewGenerator(cfg, client)
	require.NoError(t, err)
	gen.now = func() time.Time { return fixedNow }
	gen.newRunID = func() string { return "test-run" }
	return gen, cfg.OutputPath
}

func serveFeed(t *testing.T, feed string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(feed))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_RendersUpcomingGames(t *testing.T) {
	var events []string
	// one past game, then seven future games listed out of order
	events = append(events, game("past", "Football vs. Past Opponent", ":20250920T170000Z"))
	for _, day := range []int{9, 3, 7, 2, 8, 5, 4} {
		events = append(events, game(
			fmt.Sprintf("g%d", day),
			fmt.Sprintf("Westfield vs. Opponent %d (Soccer)", day),
			fmt.Sprintf(":202510%02dT230000Z", day),
			"CATEGORIES:Men's Soccer"))
	}
	srv := serveFeed(t, feedWith(events...))

	gen, out := newTestGenerator(t, srv.URL, srv.Client(), nil)
	require.NoError(t, gen.Run(context.Background()))

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(doc)

	assert.Equal(t, 5, strings.Count(html, "<tr class=\"game"))
	assert.NotContains(t, html, "Past Opponent")
	assert.NotContains(t, html, "Opponent 8")
	assert.NotContains(t, html, "Opponent 9")

	// chronological order
	last := -1
	for _, day := range []int{2, 3, 4, 5, 7} {
		idx := strings.Index(html, fmt.Sprintf("Opponent %d<", day))
		require.NotEqual(t, -1, idx, "missing Opponent %d", day)
		assert.Greater(t, idx, last)
		last = idx
	}

	assert.Contains(t, html, "<td class=\"date\">Oct 2</td>")
	assert.Contains(t, html, "<td class=\"time\">07:00 PM</td>")
	assert.Contains(t, html, "sports_soccer")
	assert.NotContains(t, html, "(Soccer)")
	assert.Contains(t, html, "<!-- Generated: 2025-10-01T12:00:00-04:00 run test-run -->")
}

func TestRun_AllDayAndDefaultIcon(t *testing.T) {
	srv := serveFeed(t, feedWith(game("xc", "Cross Country Invitational", ";VALUE=DATE:20251011")))

	gen, out := newTestGenerator(t, srv.URL, srv.Client(), func(c *models.Config) {
		c.Layout = models.LayoutCards
	})
	require.NoError(t, gen.Run(context.Background()))

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(doc)

	assert.Contains(t, html, "<div class=\"time\">All Day</div>")
	assert.Contains(t, html, "<div class=\"date\">Oct 11</div>")
	assert.Contains(t, html, "<span class=\"material-icons\">sports</span>")
	assert.Contains(t, html, "<span class=\"sport\">Cross Country</span>")
}

func TestRun_NoUpcomingEventsRendersEmptyBoard(t *testing.T) {
	srv := serveFeed(t, feedWith(game("old", "Golf vs. Keene State", ":20250901T130000Z")))

	gen, out := newTestGenerator(t, srv.URL, srv.Client(), nil)
	require.NoError(t, gen.Run(context.Background()))

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "<tr")
	assert.Contains(t, string(doc), "</html>")
}

func TestRun_UnreachableFeedKeepsPreviousOutput(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gen, out := newTestGenerator(t, url, nil, nil)
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(out, []byte("previous board"), 0o644))

	err := gen.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch feed")

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous board", string(got))
}

func TestRun_MalformedFeedKeepsPreviousOutput(t *testing.T) {
	srv := serveFeed(t, "BEGIN:VCALENDAR\r\nTHIS LINE HAS NO COLON\r\nEND:VCALENDAR\r\n")

	gen, out := newTestGenerator(t, srv.URL, srv.Client(), nil)
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(out, []byte("previous board"), 0o644))

	err := gen.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous board", string(got))
}

func TestNewGenerator_InvalidConfig(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Layout = "carousel"

	_, err := NewGenerator(cfg, nil)
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
}
