package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/srvcerror"
)

func newSrvc() *assignment.AssignmentSrvc {
	return assignment.NewAssignmentSrvc(assignment.NewInMemRepo())
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	srvc := newSrvc()

	due := time.Now().Add(48 * time.Hour)
	created, err := srvc.Create(ctx, assignment.CreateParams{
		Title:       "Math Homework 1",
		Description: "chapter 3",
		DueDate:     due,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rows, err := srvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Math Homework 1", rows[0].Title)
	assert.True(t, rows[0].DueDate.Equal(due))
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("blank title", func(t *testing.T) {
		_, err := newSrvc().Create(ctx, assignment.CreateParams{
			Title:   "   ",
			DueDate: time.Now(),
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})

	t.Run("missing due date", func(t *testing.T) {
		_, err := newSrvc().Create(ctx, assignment.CreateParams{
			Title: "Math Homework 1",
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	srvc := newSrvc()

	created, err := srvc.Create(ctx, assignment.CreateParams{
		Title:   "Math Homework 1",
		DueDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := srvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = srvc.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	srvc := newSrvc()

	created, err := srvc.Create(ctx, assignment.CreateParams{
		Title:   "Math Homework 1",
		DueDate: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	err = srvc.Delete(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))

	rows, err := srvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "failed delete must not touch storage")

	require.NoError(t, srvc.Delete(ctx, created.ID))
	rows, err = srvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
