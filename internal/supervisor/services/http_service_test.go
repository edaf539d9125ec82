// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package services

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tablemate/internal/logging"
)

// fakeServer implements HTTPServer. ListenAndServe fails with the queued
// errors first, then blocks until Shutdown.
type fakeServer struct {
	mu          sync.Mutex
	failures    []error
	shutdownErr error
	deadline    time.Duration

	serves    atomic.Int32
	shutdowns atomic.Int32
	started   chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
}

func newFakeServer(failures ...error) *fakeServer {
	return &fakeServer{
		failures: failures,
		started:  make(chan struct{}, 16),
		stop:     make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.serves.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}

	f.mu.Lock()
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()

	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	if dl, ok := ctx.Deadline(); ok {
		f.mu.Lock()
		f.deadline = time.Until(dl)
		f.mu.Unlock()
	}
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

func (f *fakeServer) shutdownDeadline() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deadline
}

func (f *fakeServer) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe was not called")
	}
}

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) entries(t *testing.T) []map[string]interface{} {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]interface{}
	sc := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	for sc.Scan() {
		var e map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("log line %q is not JSON: %v", sc.Text(), err)
		}
		out = append(out, e)
	}
	return out
}

// captureLogs routes the global logger into a buffer for the test.
// Callers must not run in parallel.
func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	prev := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(prev) })

	buf := &syncBuffer{}
	logging.SetLogger(logging.NewTestLogger(buf))
	return buf
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

func serveAsync(ctx context.Context, svc *HTTPServerService) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return errCh
}

func awaitServe(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
		return nil
	}
}

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout kept", 3 * time.Second, 3 * time.Second},
		{"zero defaults to 10s", 0, 10 * time.Second},
		{"negative defaults to 10s", -time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newFakeServer(), tt.timeout)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q, want http-server", svc.String())
			}
		})
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	buf := captureLogs(t)

	server := newFakeServer()
	svc := NewHTTPServerService(server, 0)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	server.waitStarted(t)
	cancel()

	if err := awaitServe(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if n := server.shutdowns.Load(); n != 1 {
		t.Errorf("Shutdown called %d times, want 1", n)
	}
	// The shutdown context carries the defaulted 10s budget.
	if dl := server.shutdownDeadline(); dl <= 9*time.Second || dl > 10*time.Second {
		t.Errorf("shutdown deadline = %v, want about 10s", dl)
	}

	entries := buf.entries(t)
	for _, msg := range []string{"HTTP server starting", "HTTP server stopped"} {
		e := findEntry(entries, msg)
		if e == nil {
			t.Errorf("missing %q log entry in %v", msg, entries)
			continue
		}
		if e["level"] != "info" || e["service"] != "http-server" {
			t.Errorf("%q entry = %v, want info level with service field", msg, e)
		}
	}
}

func TestHTTPServerService_ListenerFailure(t *testing.T) {
	buf := captureLogs(t)

	bindErr := errors.New("listen tcp :8080: bind: address already in use")
	server := newFakeServer(bindErr)
	svc := NewHTTPServerService(server, time.Second)

	err := awaitServe(t, serveAsync(context.Background(), svc))
	if !errors.Is(err, bindErr) {
		t.Fatalf("Serve() = %v, want wrapped bind error", err)
	}
	if server.shutdowns.Load() != 0 {
		t.Error("Shutdown must not be called after a listener failure")
	}

	e := findEntry(buf.entries(t), "HTTP server failed")
	if e == nil {
		t.Fatal("listener failure was not logged")
	}
	if e["level"] != "error" || e["error"] != bindErr.Error() || e["service"] != "http-server" {
		t.Errorf("failure entry = %v", e)
	}
	if findEntry(buf.entries(t), "HTTP server stopped") != nil {
		t.Error("a failed server must not log a clean stop")
	}
}

func TestHTTPServerService_ServerClosedIsClean(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newFakeServer(http.ErrServerClosed), time.Second)
	if err := awaitServe(t, serveAsync(context.Background(), svc)); err != nil {
		t.Errorf("Serve() = %v, want nil when the server was closed", err)
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	t.Parallel()

	shutdownErr := errors.New("connections still active")
	server := newFakeServer()
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)
	server.waitStarted(t)
	cancel()

	err := awaitServe(t, errCh)
	if !errors.Is(err, shutdownErr) {
		t.Errorf("Serve() = %v, want wrapped shutdown error", err)
	}
	if errors.Is(err, context.Canceled) {
		t.Error("a failed shutdown must not be reported as a clean cancel")
	}
}

func TestHTTPServerService_RestartedAfterBindFailure(t *testing.T) {
	t.Parallel()

	bindErr := errors.New("bind: address already in use")
	server := newFakeServer(bindErr, bindErr)
	svc := NewHTTPServerService(server, time.Second)

	sup := suture.New("api-test", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := sup.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for server.serves.Load() < 3 {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("ListenAndServe called %d times, want 3", server.serves.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	if server.shutdowns.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1 for the running instance", server.shutdowns.Load())
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	time.Sleep(50 * time.Millisecond)
	cancel()

	if err := awaitServe(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}
