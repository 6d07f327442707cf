package session

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrNoToken is returned by a Store when no token has been persisted.
var ErrNoToken = errors.New("no token stored")

// Store persists the bearer token between process runs. A single fixed slot
// is enough: the admin backend issues one opaque token per session.
type Store interface {
	Read() (string, error)
	Write(token string) error
	Delete() error
}

// MemoryStore keeps the token in memory only. Used in tests and by consumers
// that manage their own persistence.
type MemoryStore struct {
	token string
	set   bool
	lock  sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Read() (string, error) {
	ms.lock.RLock()
	defer ms.lock.RUnlock()
	if !ms.set {
		return "", ErrNoToken
	}
	return ms.token, nil
}

func (ms *MemoryStore) Write(token string) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()
	ms.token = token
	ms.set = true
	return nil
}

func (ms *MemoryStore) Delete() error {
	ms.lock.Lock()
	defer ms.lock.Unlock()
	ms.token = ""
	ms.set = false
	return nil
}
