package submission

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/filestore"
)

// ErrNotFound is returned by repos when a submission id is unknown.
var ErrNotFound = errors.New("submission not found")

type Repo interface {
	InsertSubmission(ctx context.Context, row Submission) error
	SelectAllSubmissions(ctx context.Context) ([]Submission, error)
	SelectByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error)
	SelectSubmission(ctx context.Context, id uuid.UUID) (Submission, error)
	UpdateGrade(ctx context.Context, id uuid.UUID, grade int, feedback *string) error
}

// AssignmentSrvcFacade is the slice of the assignment service the
// submission service depends on.
type AssignmentSrvcFacade interface {
	Get(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
}

type SubmissionSrvc struct {
	repo           Repo
	assignmentSrvc AssignmentSrvcFacade
	files          filestore.FileStore
}

func NewSubmissionSrvc(
	repo Repo,
	assignmentSrvc AssignmentSrvcFacade,
	files filestore.FileStore,
) *SubmissionSrvc {
	return &SubmissionSrvc{
		repo:           repo,
		assignmentSrvc: assignmentSrvc,
		files:          files,
	}
}

type CreateParams struct {
	AssignmentID uuid.UUID
	StudentUUID  uuid.UUID
	StudentName  string
	Content      string

	// Optional attachment. FileName is the name the student uploaded
	// under, FileContent the raw bytes.
	FileName    string
	FileContent []byte
}

func (s *SubmissionSrvc) Create(ctx context.Context, p CreateParams) (*Submission, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, newErrContentEmpty()
	}

	// the referenced assignment must exist at creation time
	if _, err := s.assignmentSrvc.Get(ctx, p.AssignmentID); err != nil {
		return nil, newErrAssignmentNotFound().SetDebug(err)
	}

	row := Submission{
		ID:           uuid.New(),
		AssignmentID: p.AssignmentID,
		StudentUUID:  p.StudentUUID,
		StudentName:  p.StudentName,
		Content:      p.Content,
		SubmittedAt:  time.Now(),
	}

	if len(p.FileContent) > 0 {
		key := fmt.Sprintf("submissions/%s/%s%s",
			row.ID, row.ID, filepath.Ext(p.FileName))
		path, err := s.files.Upload(ctx, p.FileContent, key, "")
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		row.FilePath = &path
	}

	if err := s.repo.InsertSubmission(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &row, nil
}

// ListAll returns every submission. Instructor scope; the HTTP layer
// enforces the role.
func (s *SubmissionSrvc) ListAll(ctx context.Context) ([]Submission, error) {
	rows, err := s.repo.SelectAllSubmissions(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return rows, nil
}

func (s *SubmissionSrvc) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	rows, err := s.repo.SelectByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return rows, nil
}

type GradeParams struct {
	SubmissionID uuid.UUID
	Grade        int
	Feedback     *string
}

func (s *SubmissionSrvc) Grade(ctx context.Context, p GradeParams) (*Submission, error) {
	if p.Grade < 0 || p.Grade > 100 {
		return nil, newErrGradeOutOfRange()
	}

	if _, err := s.repo.SelectSubmission(ctx, p.SubmissionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, newErrSubmissionNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	if err := s.repo.UpdateGrade(ctx, p.SubmissionID, p.Grade, p.Feedback); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, newErrSubmissionNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	row, err := s.repo.SelectSubmission(ctx, p.SubmissionID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return &row, nil
}
