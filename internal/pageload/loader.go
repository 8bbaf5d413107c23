// Package pageload loads the data a page needs from the backend before it is rendered.
package pageload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrRequest = errors.New("backend request failed")
	ErrRead    = errors.New("backend response read failed")
)

// Result is the data handed to the page template.
type Result struct {
	Message string
}

// Loader fetches the backend base URL and forwards the response body as text.
// It is safe for concurrent use.
type Loader struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// NewLoader returns a new Loader.
// If client is nil, a new http.Client is used.
func NewLoader(cfg *Config, client *http.Client) (*Loader, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("NewLoader: base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("NewLoader: base URL: got scheme %q, want http or https", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("NewLoader: base URL: empty host")
	}
	if u.Path == "" {
		u.Path = "/"
	}

	if client == nil {
		client = &http.Client{}
	}

	return &Loader{
		client:  client,
		baseURL: u.String(),
		timeout: cfg.timeout(),
	}, nil
}

// Load issues one GET request to the backend and returns its body as the message.
// The response status is not checked: any body, including the body of an error
// response, becomes the message.
// On failure it returns a nil Result and an error wrapping ErrRequest or ErrRead.
// A canceled or expired ctx fails the call; partial bodies are never returned.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("load: %w: %w", ErrRequest, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load: %w: %w", ErrRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("load: %w: %w", ErrRead, err)
	}

	return &Result{Message: string(body)}, nil
}
