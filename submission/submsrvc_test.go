package submission_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/filestore"
	"github.com/subassign/portal/srvcerror"
	"github.com/subassign/portal/submission"
)

type fixture struct {
	srvc         *submission.SubmissionSrvc
	files        *filestore.LocalStore
	assignmentID uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	files, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assignmentSrvc := assignment.NewAssignmentSrvc(assignment.NewInMemRepo())
	created, err := assignmentSrvc.Create(context.Background(), assignment.CreateParams{
		Title:   "Math Homework 1",
		DueDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	return fixture{
		srvc:         submission.NewSubmissionSrvc(submission.NewInMemRepo(), assignmentSrvc, files),
		files:        files,
		assignmentID: created.ID,
	}
}

func createParams(f fixture) submission.CreateParams {
	return submission.CreateParams{
		AssignmentID: f.assignmentID,
		StudentUUID:  uuid.New(),
		StudentName:  "Student User",
		Content:      "my solution",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.srvc.Create(ctx, createParams(f))
	require.NoError(t, err)
	assert.Equal(t, "my solution", created.Content)
	assert.Nil(t, created.Grade, "new submission must start ungraded")
	assert.Nil(t, created.FilePath)
	assert.False(t, created.Graded())

	rows, err := f.srvc.ListByAssignment(ctx, f.assignmentID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
}

func TestCreateStoresFile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	params := createParams(f)
	params.FileName = "answers.txt"
	params.FileContent = []byte("1+1=2\n")

	created, err := f.srvc.Create(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, created.FilePath)

	stored, err := f.files.Download(ctx, *created.FilePath)
	require.NoError(t, err)
	assert.Equal(t, params.FileContent, stored)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("blank content", func(t *testing.T) {
		params := createParams(f)
		params.Content = " \t\n"
		_, err := f.srvc.Create(ctx, params)
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})

	t.Run("unknown assignment", func(t *testing.T) {
		params := createParams(f)
		params.AssignmentID = uuid.New()
		_, err := f.srvc.Create(ctx, params)
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})
}

func TestGrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.srvc.Create(ctx, createParams(f))
	require.NoError(t, err)

	feedback := "good work"
	graded, err := f.srvc.Grade(ctx, submission.GradeParams{
		SubmissionID: created.ID,
		Grade:        85,
		Feedback:     &feedback,
	})
	require.NoError(t, err)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 85, *graded.Grade)
	require.NotNil(t, graded.Feedback)
	assert.Equal(t, "good work", *graded.Feedback)
	assert.True(t, graded.Graded())
}

func TestGradeValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.srvc.Create(ctx, createParams(f))
	require.NoError(t, err)

	for _, grade := range []int{-1, 101} {
		_, err := f.srvc.Grade(ctx, submission.GradeParams{
			SubmissionID: created.ID,
			Grade:        grade,
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	}

	// the rejected grades must leave the submission ungraded
	rows, err := f.srvc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Grade)

	_, err = f.srvc.Grade(ctx, submission.GradeParams{
		SubmissionID: uuid.New(),
		Grade:        85,
	})
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))
}
