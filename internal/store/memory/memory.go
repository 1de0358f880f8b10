// Package memory is an in-memory store.Store used by tests. It is safe
// for concurrent use and is lost on restart; production runs on the
// postgres store.
package memory

import (
	"context"
	"sync"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// Store holds all records in maps guarded by one mutex. Atomically
// snapshots the maps up front and restores them if the unit of work
// fails, giving the same all-or-nothing behavior as a database
// transaction.
type Store struct {
	mu sync.Mutex
	st *state
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{st: newState()}
}

// Atomically implements store.Store. The single mutex means units of
// work serialize completely, which trivially satisfies the row-locking
// contract of GetAccountForUpdate and GetRewardForUpdate.
func (s *Store) Atomically(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(&txView{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// txView exposes the state inside a unit of work, with the outer mutex
// already held.
type txView struct {
	st *state
}

var (
	_ store.Store = (*Store)(nil)
	_ store.Tx    = (*txView)(nil)
)
