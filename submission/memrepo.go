package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemRepo struct {
	mu   sync.RWMutex
	rows []Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{}
}

func (r *InMemRepo) InsertSubmission(ctx context.Context, row Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

func (r *InMemRepo) SelectAllSubmissions(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Submission, len(r.rows))
	copy(res, r.rows)
	return res, nil
}

func (r *InMemRepo) SelectByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, row := range r.rows {
		if row.AssignmentID == assignmentID {
			res = append(res, row)
		}
	}
	return res, nil
}

func (r *InMemRepo) SelectSubmission(ctx context.Context, id uuid.UUID) (Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return Submission{}, ErrNotFound
}

func (r *InMemRepo) UpdateGrade(ctx context.Context, id uuid.UUID, grade int, feedback *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			g := grade
			r.rows[i].Grade = &g
			r.rows[i].Feedback = feedback
			return nil
		}
	}
	return ErrNotFound
}
