package assignment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repos when an assignment id is unknown.
// The service maps it onto the user-facing not_found error.
var ErrNotFound = errors.New("assignment not found")

type Repo interface {
	InsertAssignment(ctx context.Context, row Assignment) error
	SelectAllAssignments(ctx context.Context) ([]Assignment, error)
	SelectAssignment(ctx context.Context, id uuid.UUID) (Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type AssignmentSrvc struct {
	repo Repo
}

func NewAssignmentSrvc(repo Repo) *AssignmentSrvc {
	return &AssignmentSrvc{repo: repo}
}

// List returns assignments in storage order. Callers that want sorting
// or filtering do it themselves.
func (s *AssignmentSrvc) List(ctx context.Context) ([]Assignment, error) {
	rows, err := s.repo.SelectAllAssignments(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return rows, nil
}

type CreateParams struct {
	Title       string
	Description string
	DueDate     time.Time
}

func (s *AssignmentSrvc) Create(ctx context.Context, p CreateParams) (*Assignment, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrTitleEmpty()
	}
	if p.DueDate.IsZero() {
		return nil, newErrDueDateMissing()
	}

	row := Assignment{
		ID:          uuid.New(),
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.InsertAssignment(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &row, nil
}

func (s *AssignmentSrvc) Get(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	row, err := s.repo.SelectAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, newErrAssignmentNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}
	return &row, nil
}

func (s *AssignmentSrvc) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return newErrAssignmentNotFound()
		}
		return newErrInternalSE().SetDebug(err)
	}
	return nil
}
