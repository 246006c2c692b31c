package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func newTestChart(t *testing.T, name string) *linechart.Chart {
	t.Helper()
	c, err := linechart.New(models.Dataset{
		Name: name,
		Samples: []models.Sample{
			{Year: year(1990), Value: 100},
			{Year: year(1995), Value: 150},
			{Year: year(2000), Value: 200},
		},
	}, linechart.DefaultOptions())
	require.NoError(t, err)
	return c
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New([]*linechart.Chart{newTestChart(t, "revenue")}, DefaultConfig(), nil)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/charts/revenue/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[sessionResponse](t, resp).Session
	require.NotEmpty(t, id)
	return id
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]*linechart.Chart{newTestChart(t, "a"), newTestChart(t, "a")}, DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestIndexAndHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	idx := decode[indexResponse](t, resp)
	require.Len(t, idx.Charts, 1)
	assert.Equal(t, chartSummary{Name: "revenue", Samples: 3, First: "1990", Last: "2000", URL: "/charts/revenue"}, idx.Charts[0])

	resp = do(t, http.MethodGet, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChartDocuments(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/charts/revenue", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp = do(t, http.MethodGet, ts.URL+"/charts/revenue/chart.svg", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	resp = do(t, http.MethodGet, ts.URL+"/charts/revenue/samples", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	samples := decode[[]sampleResponse](t, resp)
	require.Len(t, samples, 3)
	assert.Equal(t, "1995", samples[1].Year)
	assert.Equal(t, 0.0, samples[0].X)
	assert.Equal(t, 640.0, samples[2].X)
}

func TestUnknownChart(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{"/charts/nope", "/charts/nope/chart.svg", "/charts/nope/samples"} {
		resp := do(t, http.MethodGet, ts.URL+path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	resp := do(t, http.MethodPost, ts.URL+"/charts/nope/sessions", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode[errorResponse](t, resp).Error, "unknown chart")
}

func TestNearest(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/charts/revenue/nearest?x=640", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	f := decode[focusResponse](t, resp)
	assert.Equal(t, 2, f.Index)
	assert.Equal(t, "2000", f.Year)
	assert.Equal(t, "200", f.Label)

	for _, x := range []string{"abc", "Inf", "-Inf", "NaN"} {
		resp = do(t, http.MethodGet, ts.URL+"/charts/revenue/nearest?x="+x, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "x=%s", x)
	}

	resp = do(t, http.MethodGet, ts.URL+"/charts/revenue/nearest?x=1e20", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[focusResponse](t, resp).Index)
}

func TestSessionEvents(t *testing.T) {
	s, ts := newTestServer(t)
	id := createSession(t, ts)
	events := ts.URL + "/charts/revenue/sessions/" + id + "/events"

	tests := []struct {
		body    string
		visible bool
		year    string
	}{
		{`{"type":"enter","x":0,"y":10}`, true, "1990"},
		{`{"type":"move","x":300,"y":10}`, true, "1995"},
		{`{"type":"move","x":9999,"y":10}`, true, "2000"},
		{`{"type":"leave"}`, false, "2000"},
	}

	for _, tt := range tests {
		resp := do(t, http.MethodPost, events, tt.body)
		require.Equal(t, http.StatusOK, resp.StatusCode, tt.body)
		f := decode[focusResponse](t, resp)
		assert.Equal(t, tt.visible, f.Visible, tt.body)
		assert.Equal(t, tt.year, f.Year, tt.body)
	}

	tracker, err := s.sessions.Get("revenue", id)
	require.NoError(t, err)
	assert.Equal(t, linechart.Hidden, tracker.State())
}

func TestSessionEventErrors(t *testing.T) {
	_, ts := newTestServer(t)
	id := createSession(t, ts)
	events := ts.URL + "/charts/revenue/sessions/" + id + "/events"

	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"unknown type", events, `{"type":"click","x":1}`, http.StatusBadRequest},
		{"missing type", events, `{"x":1}`, http.StatusBadRequest},
		{"malformed", events, `{`, http.StatusBadRequest},
		{"unknown session", ts.URL + "/charts/revenue/sessions/00000000-0000-0000-0000-000000000000/events", `{"type":"move"}`, http.StatusNotFound},
		{"bad session id", ts.URL + "/charts/revenue/sessions/xyz/events", `{"type":"move"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, tt.url, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestDeleteSession(t *testing.T) {
	s, ts := newTestServer(t)
	id := createSession(t, ts)
	assert.Equal(t, 1, s.sessions.Len())

	resp := do(t, http.MethodDelete, ts.URL+"/charts/revenue/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.sessions.Len())

	resp = do(t, http.MethodDelete, ts.URL+"/charts/revenue/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	_, ts := newTestServer(t)
	id := createSession(t, ts)
	do(t, http.MethodPost, ts.URL+"/charts/revenue/sessions/"+id+"/events", `{"type":"enter","x":10}`)

	resp := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var b bytes.Buffer
	_, err := b.ReadFrom(resp.Body)
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, `linechart_pointer_events_total{chart="revenue",type="enter"} 1`)
	assert.Contains(t, out, "linechart_sessions 1")
	assert.Contains(t, out, "linechart_http_requests_total")
}

func TestSessionLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSessions = 2
	s, err := New([]*linechart.Chart{newTestChart(t, "revenue")}, cfg, nil)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	first := createSession(t, ts)
	createSession(t, ts)

	resp := do(t, http.MethodPost, ts.URL+"/charts/revenue/sessions", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 2, s.sessions.Len())

	// deleting frees a slot
	do(t, http.MethodDelete, ts.URL+"/charts/revenue/sessions/"+first, "")
	createSession(t, ts)
}

func TestEventBodyLimit(t *testing.T) {
	_, ts := newTestServer(t)
	id := createSession(t, ts)

	body := `{"type":"move","x":1,"pad":"` + strings.Repeat("a", 2*maxEventBytes) + `"}`
	resp := do(t, http.MethodPost, ts.URL+"/charts/revenue/sessions/"+id+"/events", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}
