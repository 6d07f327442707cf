package session

import (
	"sync"

	"github.com/pkg/errors"
)

// Session holds the bearer token for the current login and keeps the durable
// store in sync with every change. It is the only mutable state shared across
// gateway calls, so access is guarded for concurrent use.
type Session struct {
	store Store
	token string
	lock  sync.RWMutex
}

// New builds a Session backed by the given store and primes the in-memory
// token from whatever the store already holds. A missing stored token is the
// logged-out state, not an error.
func New(store Store) (*Session, error) {
	if store == nil {
		return nil, errors.New("[session.New] store is required")
	}
	s := &Session{store: store}
	token, err := store.Read()
	if err != nil && !errors.Is(err, ErrNoToken) {
		return nil, errors.Wrap(err, "[session.New] store.Read")
	}
	s.token = token
	return s, nil
}

// Token returns the current bearer token and whether one is set.
func (s *Session) Token() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.token, s.token != ""
}

// Set stores a new token in memory and writes it through to the store.
func (s *Session) Set(token string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = token
	if err := s.store.Write(token); err != nil {
		return errors.Wrap(err, "[Session.Set] store.Write")
	}
	return nil
}

// Clear removes the token from memory and from the store. Clearing an already
// empty session is a no-op.
func (s *Session) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = ""
	if err := s.store.Delete(); err != nil {
		return errors.Wrap(err, "[Session.Clear] store.Delete")
	}
	return nil
}
