package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/k11v/gradewise/internal/pageload"
)

type StubPageLoader struct {
	LoadFunc func(ctx context.Context) (*pageload.Result, error)
}

func (l *StubPageLoader) Load(ctx context.Context) (*pageload.Result, error) {
	return l.LoadFunc(ctx)
}

func NewTestHandler(tb testing.TB, loader PageLoader) http.Handler {
	tb.Helper()

	h, err := NewHandler(loader, dataFS, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		tb.Fatalf("didn't want %q", err)
	}
	return h.RequestLogger(h.Routes())
}

func NewTestBackendLoader(tb testing.TB, status int, body string) PageLoader {
	tb.Helper()

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	tb.Cleanup(s.Close)

	l, err := pageload.NewLoader(&pageload.Config{BaseURL: s.URL}, nil)
	if err != nil {
		tb.Fatalf("didn't want %q", err)
	}
	return l
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandlerPage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "hello", status: http.StatusOK, body: "hello", wantMessage: `<p class="message">hello</p>`},
		{name: "empty", status: http.StatusOK, body: "", wantMessage: `<p class="message"></p>`},
		{name: "backend error body", status: http.StatusInternalServerError, body: "error", wantMessage: `<p class="message">error</p>`},
		{name: "escaped", status: http.StatusOK, body: "<script>alert(1)</script>", wantMessage: `<p class="message">&lt;script&gt;alert(1)&lt;/script&gt;</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHandler(t, NewTestBackendLoader(t, tt.status, tt.body))

			w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

			if got, want := w.Code, http.StatusOK; got != want {
				t.Fatalf("got %d, want %d", got, want)
			}
			if got, want := w.Header().Get("Content-Type"), "text/html"; got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
			if got := w.Body.String(); !strings.Contains(got, tt.wantMessage) {
				t.Fatalf("got %q, want it to contain %q", got, tt.wantMessage)
			}
		})
	}
}

func TestHandlerPageBackendUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("didn't want %q", err)
	}
	addr := ln.Addr().String()
	if err = ln.Close(); err != nil {
		t.Fatalf("didn't want %q", err)
	}
	loader, err := pageload.NewLoader(&pageload.Config{BaseURL: "http://" + addr}, nil)
	if err != nil {
		t.Fatalf("didn't want %q", err)
	}
	h := NewTestHandler(t, loader)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	if got, want := w.Code, http.StatusInternalServerError; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if got := w.Body.String(); strings.Contains(got, `class="message"`) {
		t.Fatalf("got %q, want the error page", got)
	}
	if got, want := w.Body.String(), "Internal Server Error"; !strings.Contains(got, want) {
		t.Fatalf("got %q, want it to contain %q", got, want)
	}
}

func TestHandlerPageLoaderError(t *testing.T) {
	loader := &StubPageLoader{LoadFunc: func(ctx context.Context) (*pageload.Result, error) {
		return nil, pageload.ErrRead
	}}
	h := NewTestHandler(t, loader)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	if got, want := w.Code, http.StatusInternalServerError; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if got := w.Body.String(); strings.Contains(got, pageload.ErrRead.Error()) {
		t.Fatalf("got %q, want no error details", got)
	}
}

func TestHandlerPageCanceled(t *testing.T) {
	loader := &StubPageLoader{LoadFunc: func(ctx context.Context) (*pageload.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	h := NewTestHandler(t, loader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	if got := w.Body.Len(); got != 0 {
		t.Fatalf("got %d body bytes, want 0", got)
	}
}

func TestHandlerPagePassesRequestContext(t *testing.T) {
	type key struct{}
	var got any
	loader := &StubPageLoader{LoadFunc: func(ctx context.Context) (*pageload.Result, error) {
		got = ctx.Value(key{})
		return &pageload.Result{Message: "hello"}, nil
	}}
	h := NewTestHandler(t, loader)

	ctx := context.WithValue(context.Background(), key{}, "value")
	_ = serve(h, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	if want := "value"; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHandlerNotFoundPage(t *testing.T) {
	loader := &StubPageLoader{LoadFunc: func(ctx context.Context) (*pageload.Result, error) {
		return nil, errors.New("didn't want a load")
	}}
	h := NewTestHandler(t, loader)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if got, want := w.Code, http.StatusNotFound; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if got, want := w.Body.String(), "Not Found"; !strings.Contains(got, want) {
		t.Fatalf("got %q, want it to contain %q", got, want)
	}
}

func TestHandlerHealth(t *testing.T) {
	h := NewTestHandler(t, &StubPageLoader{})

	w := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got, want := w.Body.String(), `{"status":"ok"}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandlerStaticFile(t *testing.T) {
	h := NewTestHandler(t, &StubPageLoader{})

	w := serve(h, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	if got, want := w.Code, http.StatusOK; got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if got, want := w.Header().Get("Content-Type"), "text/css"; !strings.HasPrefix(got, want) {
		t.Fatalf("got %q, want %q prefix", got, want)
	}
}

func TestHandlerRequestLogger(t *testing.T) {
	h := NewTestHandler(t, &StubPageLoader{})

	first := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil)).Header().Get(headerXRequestID)
	second := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil)).Header().Get(headerXRequestID)

	for _, id := range []string{first, second} {
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("didn't want %q", err)
		}
	}
	if first == second {
		t.Fatalf("got equal request ids %q", first)
	}
}

func TestHandlerRequestLoggerStatus(t *testing.T) {
	tests := []struct {
		name       string
		loadFunc   func(ctx context.Context) (*pageload.Result, error)
		canceled   bool
		target     string
		wantStatus any
	}{
		{
			name:       "rendered page",
			loadFunc:   func(ctx context.Context) (*pageload.Result, error) { return &pageload.Result{Message: "hello"}, nil },
			target:     "/",
			wantStatus: float64(http.StatusOK),
		},
		{
			name:       "not found page",
			target:     "/unknown",
			wantStatus: float64(http.StatusNotFound),
		},
		{
			name:       "static file without explicit header",
			target:     "/static/style.css",
			wantStatus: float64(http.StatusOK),
		},
		{
			name: "canceled render",
			loadFunc: func(ctx context.Context) (*pageload.Result, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			canceled:   true,
			target:     "/",
			wantStatus: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			log := slog.New(slog.NewJSONHandler(buf, nil))
			h, err := NewHandler(&StubPageLoader{LoadFunc: tt.loadFunc}, dataFS, log)
			if err != nil {
				t.Fatalf("didn't want %q", err)
			}
			handler := h.RequestLogger(h.Routes())

			ctx := context.Background()
			if tt.canceled {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}
			_ = serve(handler, httptest.NewRequest(http.MethodGet, tt.target, nil).WithContext(ctx))

			var got any
			found := false
			dec := json.NewDecoder(buf)
			for dec.More() {
				var entry map[string]any
				if err = dec.Decode(&entry); err != nil {
					t.Fatalf("didn't want %q", err)
				}
				if entry["msg"] == "request served" {
					got, found = entry["status"], true
				}
			}
			if !found {
				t.Fatalf("didn't get a request served log entry")
			}
			if got != tt.wantStatus {
				t.Fatalf("got %v, want %v", got, tt.wantStatus)
			}
		})
	}
}
