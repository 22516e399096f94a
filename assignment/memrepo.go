package assignment

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemRepo struct {
	mu   sync.RWMutex
	rows []Assignment
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{}
}

func (r *InMemRepo) InsertAssignment(ctx context.Context, row Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

func (r *InMemRepo) SelectAllAssignments(ctx context.Context) ([]Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Assignment, len(r.rows))
	copy(res, r.rows)
	return res, nil
}

func (r *InMemRepo) SelectAssignment(ctx context.Context, id uuid.UUID) (Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return Assignment{}, ErrNotFound
}

func (r *InMemRepo) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
