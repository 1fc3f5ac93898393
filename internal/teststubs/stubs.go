package teststubs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
)

// StubFetcher is a test double for providers.Fetcher.
// Responses are looked up by endpoint; Err, when set, is returned for every call.
type StubFetcher struct {
	Responses map[string]json.RawMessage
	Err       error
	Calls     atomic.Int32
	// Gate, when non-nil, blocks each call until it is closed.
	Gate chan struct{}

	mu     sync.Mutex
	params []map[string]string
}

// Fetch returns the configured response for endpoint while tracking calls.
func (s *StubFetcher) Fetch(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.params = append(s.params, params)
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	raw, ok := s.Responses[endpoint]
	if !ok {
		return json.RawMessage(`[]`), nil
	}
	return raw, nil
}

// LastParams returns the params of the most recent call.
func (s *StubFetcher) LastParams() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.params) == 0 {
		return nil
	}
	return s.params[len(s.params)-1]
}

// StubStore is an in-memory kvstore.Store with injectable failures.
type StubStore struct {
	GetErr    error
	SetErr    error
	DeleteErr error

	mu      sync.Mutex
	entries map[string]string
	Gets    atomic.Int32
	Sets    atomic.Int32
	Deletes atomic.Int32
}

func (s *StubStore) Get(_ context.Context, key string) (string, bool, error) {
	s.Gets.Add(1)
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *StubStore) Set(_ context.Context, key, value string) error {
	s.Sets.Add(1)
	if s.SetErr != nil {
		return s.SetErr
	}
	if key == "" {
		return errors.New("empty key")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	s.entries[key] = value
	return nil
}

func (s *StubStore) Delete(_ context.Context, key string) error {
	s.Deletes.Add(1)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Put seeds an entry without counting it as a Set.
func (s *StubStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	s.entries[key] = value
}

// Peek reads an entry without counting it as a Get.
func (s *StubStore) Peek(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}
