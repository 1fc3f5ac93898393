package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

type failingListener struct{}

func (failingListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (failingListener) Close() error              { return nil }
func (failingListener) Addr() net.Addr            { return &net.TCPAddr{IP: net.IPv4zero} }

func TestNetHTTPServerReportsListenerFailure(t *testing.T) {
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: failingListener{}}
	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from failing listener")
	}
}

func TestNetHTTPServerServesOnListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := netHTTPServer{srv: &http.Server{Handler: mux, ReadTimeout: readTimeout}, listener: ln}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("unexpected body %q", body)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("serve did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":4000", Handler: handler}}

	if s.Addr() != ":4000" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
}
