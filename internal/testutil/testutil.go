// Package testutil provides shared test helpers for lookup and CLI tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/tbckr/cnam/internal/cnam"
)

// StubTransport implements cnam.Transport for testing.
// It records every requested URL and answers with Body and Err.
// If GetFn is set it is called instead.
type StubTransport struct {
	Body  string
	Err   error
	GetFn func(ctx context.Context, url string) (string, error)

	mu   sync.Mutex
	urls []string
}

var _ cnam.Transport = (*StubTransport)(nil)

// Get implements cnam.Transport.
func (s *StubTransport) Get(ctx context.Context, url string) (string, error) {
	s.mu.Lock()
	s.urls = append(s.urls, url)
	s.mu.Unlock()
	if s.GetFn != nil {
		return s.GetFn(ctx, url)
	}
	return s.Body, s.Err
}

// URLs returns a copy of the URLs requested so far, in call order.
func (s *StubTransport) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.urls...)
}

// Calls returns the number of Get calls made so far.
func (s *StubTransport) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.urls)
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
