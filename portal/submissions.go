package portal

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/session"
	"github.com/subassign/portal/srvcerror"
)

func newErrContentEmpty() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"submission content must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrGradeNotANumber() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"grade must be a number between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrGradeOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation,
		"grade must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

// SubmissionBoard holds the last-fetched submissions plus the transient
// per-submission grading state. The grading flags are UI-session-local
// and never persisted.
type SubmissionBoard struct {
	client   client.Client
	sessions *session.Store

	items   []client.Submission
	grading map[string]bool
}

func NewSubmissionBoard(c client.Client, sessions *session.Store) *SubmissionBoard {
	return &SubmissionBoard{
		client:   c,
		sessions: sessions,
		grading:  make(map[string]bool),
	}
}

// Refresh fetches every submission (instructor view).
func (b *SubmissionBoard) Refresh(ctx context.Context) error {
	items, err := b.client.ListSubmissions(ctx)
	if err != nil {
		return surface(b.sessions, err)
	}
	b.items = items
	return nil
}

// RefreshByAssignment fetches the submissions of one assignment.
func (b *SubmissionBoard) RefreshByAssignment(ctx context.Context, assignmentID string) error {
	items, err := b.client.ListSubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		return surface(b.sessions, err)
	}
	b.items = items
	return nil
}

func (b *SubmissionBoard) Items() []client.Submission {
	res := make([]client.Submission, len(b.items))
	copy(res, b.items)
	return res
}

type SubmitParams struct {
	AssignmentID string
	Content      string
	FileName     string
	FileContent  []byte
}

// Submit creates a submission. Whitespace-only content is rejected here,
// before the Domain Client is ever called.
func (b *SubmissionBoard) Submit(ctx context.Context, p SubmitParams) error {
	if strings.TrimSpace(p.Content) == "" {
		return newErrContentEmpty()
	}
	err := b.client.CreateSubmission(ctx, client.CreateSubmissionParams{
		AssignmentID: p.AssignmentID,
		Content:      p.Content,
		FileName:     p.FileName,
		FileContent:  p.FileContent,
	})
	return surface(b.sessions, err)
}

// OpenGrading marks one submission as being graded. Independent per id.
func (b *SubmissionBoard) OpenGrading(submissionID string) {
	b.grading[submissionID] = true
}

// CancelGrading closes the grading state without grading.
func (b *SubmissionBoard) CancelGrading(submissionID string) {
	delete(b.grading, submissionID)
}

func (b *SubmissionBoard) GradingOpen(submissionID string) bool {
	return b.grading[submissionID]
}

// Grade parses and validates the raw grade input, calls the Domain
// Client, and on success updates the held submission in place so the
// view needs no refetch. On failure the grading state stays open for a
// retry and the held collection is untouched.
func (b *SubmissionBoard) Grade(ctx context.Context, submissionID, rawGrade string, feedback string) error {
	grade, err := strconv.Atoi(strings.TrimSpace(rawGrade))
	if err != nil {
		return newErrGradeNotANumber()
	}
	if grade < 0 || grade > 100 {
		return newErrGradeOutOfRange()
	}

	var fb *string
	if feedback != "" {
		fb = &feedback
	}

	if err := b.client.GradeSubmission(ctx, client.GradeParams{
		SubmissionID: submissionID,
		Grade:        grade,
		Feedback:     fb,
	}); err != nil {
		return surface(b.sessions, err)
	}

	for i := range b.items {
		if b.items[i].ID == submissionID {
			g := grade
			b.items[i].Grade = &g
			b.items[i].Feedback = fb
			break
		}
	}
	delete(b.grading, submissionID)
	return nil
}
