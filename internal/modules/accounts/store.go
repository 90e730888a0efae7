package accounts

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"geministore.com/app/internal/store"
)

// SnapshotKey is the durable-state entry holding the account list.
const SnapshotKey = "geminiStoreUsers"

// Store keeps the flat list of registered accounts, persisted as one JSON
// snapshot. Email comparison is exact and case-sensitive throughout.
type Store struct {
	mu       sync.RWMutex
	accounts []Account
	persist  store.Store
}

func NewStore(persist store.Store) *Store {
	return &Store{persist: persist}
}

// Load reads the snapshot; absence and corruption both mean an empty list.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.persist.Load(ctx, SnapshotKey)
	if err != nil {
		if err == store.ErrNotFound {
			return nil
		}
		return err
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		log.Printf("accounts: corrupt snapshot discarded: %v", err)
		return nil
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()
	return nil
}

func (s *Store) FindByEmail(email string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return Account{}, false
}

// FindByCredentials matches on exact (email, password) pairs.
func (s *Store) FindByCredentials(email, password string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Email == email && a.Password == password {
			return a, true
		}
	}
	return Account{}, false
}

// Append adds the account and persists the full list.
func (s *Store) Append(ctx context.Context, a Account) error {
	s.mu.Lock()
	s.accounts = append(s.accounts, a)
	data, err := json.Marshal(s.accounts)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.persist.Save(ctx, SnapshotKey, data)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
