// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/your-pick/cliparse"
	"github.com/danielhkuo/your-pick/db"
)

// SetupTestDB opens a private in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointed at apiURL
func GetTestConfig(apiURL string) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		APIBaseURL:   apiURL,
		APITimeout:   2 * time.Second,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		CSRFKey:      []byte(strings.Repeat("k", 32)),
		LogLevel:     slog.LevelError,
	}
}

// Reply is a canned response
type Reply struct {
	Status int
	Body   string
	// Delay is waited before replying, or until the request is cancelled
	Delay time.Duration
}

// FakeAPI is an in-process stand-in for the voting API. Routes use ServeMux
// patterns relative to /api/v1, e.g. "GET /topics/{id}".
type FakeAPI struct {
	Server *httptest.Server

	mu      sync.Mutex
	mux     *http.ServeMux
	replies map[string]Reply
	calls   map[string]int
	bodies  map[string]string
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		mux:     http.NewServeMux(),
		replies: map[string]Reply{},
		calls:   map[string]int{},
		bodies:  map[string]string{},
	}
	f.Server = httptest.NewServer(http.StripPrefix("/api/v1", f.mux))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL to configure clients with
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// JSON registers a 200 reply with body for pattern
func (f *FakeAPI) JSON(pattern, body string) {
	f.Handle(pattern, Reply{Status: http.StatusOK, Body: body})
}

// Handle sets the reply for pattern, replacing any earlier one
func (f *FakeAPI) Handle(pattern string, reply Reply) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.replies[pattern]; !ok {
		f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			f.serve(pattern, w, r)
		})
	}
	f.replies[pattern] = reply
}

func (f *FakeAPI) serve(pattern string, w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls[pattern]++
	f.bodies[pattern] = string(body)
	reply := f.replies[pattern]
	f.mu.Unlock()

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-r.Context().Done():
			return
		}
	}

	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, reply.Body)
}

// Calls reports how many requests pattern has served
func (f *FakeAPI) Calls(pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[pattern]
}

// TotalCalls reports requests across every pattern
func (f *FakeAPI) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// LastBody returns the most recent request body sent to pattern
func (f *FakeAPI) LastBody(pattern string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[pattern]
}

// MakeFormRequest creates a POST request with a url-encoded form body
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains every substring
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, subs ...string) {
	t.Helper()
	body := w.Body.String()
	for _, s := range subs {
		if !strings.Contains(body, s) {
			t.Errorf("Expected body to contain %q. Body: %s", s, body)
		}
	}
}

// AssertNotContains checks that the response body contains none of the substrings
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, subs ...string) {
	t.Helper()
	body := w.Body.String()
	for _, s := range subs {
		if strings.Contains(body, s) {
			t.Errorf("Expected body not to contain %q", s)
		}
	}
}
