package user

import (
	"context"
	"sync"
)

// InMemRepo keeps users in process memory. Used by tests and mock mode.
type InMemRepo struct {
	mu   sync.RWMutex
	rows []User
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{}
}

func (r *InMemRepo) InsertUser(ctx context.Context, row User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

func (r *InMemRepo) SelectAllUsers(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]User, len(r.rows))
	copy(res, r.rows)
	return res, nil
}
