package testutil

import (
	"context"
	"net/http"
)

// StubCloser counts Close calls and returns Err.
type StubCloser struct {
	Calls int
	Err   error
}

func (c *StubCloser) Close() error {
	c.Calls++
	return c.Err
}

// StubHTTPServer satisfies the server package's httpServer seam.
// ListenAndServe returns ListenErr at once. When Unblock is set, Shutdown waits
// for it or for the context, whichever comes first.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	ListenCalls   int
	ShutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.ShutdownCalls++
	if s.Unblock == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Unblock:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string { return s.AddrVal }

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}
