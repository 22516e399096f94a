package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
	"github.com/subassign/portal/srvcerror"
)

func TestNewResolvesMode(t *testing.T) {
	c := client.New(client.Config{Mode: client.ModeMock}, nil)
	_, ok := c.(*client.Mock)
	assert.True(t, ok, "mock mode must yield the in-memory client")

	c = client.New(client.Config{Mode: client.ModeHTTP, BaseURL: "http://localhost:8080"}, nil)
	_, ok = c.(*client.Mock)
	assert.False(t, ok, "http mode must not yield the mock")
}

func TestMockLogin(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()

	res, err := mock.Login(ctx, "student@test.com", "student123")
	require.NoError(t, err)
	assert.Equal(t, "Student User", res.User.Name)
	assert.Equal(t, auth.RoleStudent, res.User.Role)

	// the mock signs real tokens so rehydration works in mock mode too
	claims, err := auth.DecodeClaimsUnverified(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "student@test.com", claims.Email)

	_, err = mock.Login(ctx, "student@test.com", "wrongpassword")
	require.Error(t, err)
	assert.True(t, srvcerror.IsAuthentication(err))
}

func TestMockSeededData(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()

	assignments, err := mock.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "Math Assignment 1", assignments[0].Title)

	submissions, err := mock.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	require.NotNil(t, submissions[0].Grade)
	assert.Equal(t, 85, *submissions[0].Grade)
}

func TestMockCreateSubmission(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()

	_, err := mock.Login(ctx, "student@test.com", "student123")
	require.NoError(t, err)

	err = mock.CreateSubmission(ctx, client.CreateSubmissionParams{
		AssignmentID: "2",
		Content:      "my renewable energy slides",
	})
	require.NoError(t, err)

	rows, err := mock.ListSubmissionsByAssignment(ctx, "2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "my renewable energy slides", rows[0].Content)
	assert.Equal(t, "Student User", rows[0].StudentName)
	assert.Nil(t, rows[0].Grade, "new submission must start ungraded")

	t.Run("blank content", func(t *testing.T) {
		err := mock.CreateSubmission(ctx, client.CreateSubmissionParams{
			AssignmentID: "2",
			Content:      "   ",
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})

	t.Run("unknown assignment", func(t *testing.T) {
		err := mock.CreateSubmission(ctx, client.CreateSubmissionParams{
			AssignmentID: "999",
			Content:      "lost homework",
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})
}

func TestMockGradeSubmission(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()
	feedback := "solid"

	err := mock.GradeSubmission(ctx, client.GradeParams{
		SubmissionID: "1",
		Grade:        90,
		Feedback:     &feedback,
	})
	require.NoError(t, err)

	// a rejected grade must leave the previous one untouched
	err = mock.GradeSubmission(ctx, client.GradeParams{SubmissionID: "1", Grade: 150})
	require.Error(t, err)
	assert.True(t, srvcerror.IsValidation(err))

	rows, err := mock.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Grade)
	assert.Equal(t, 90, *rows[0].Grade)

	err = mock.GradeSubmission(ctx, client.GradeParams{SubmissionID: "999", Grade: 50})
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))
}

func TestMockDeleteAssignment(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()

	err := mock.DeleteAssignment(ctx, "999")
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))

	// a failed delete leaves the collection alone
	rows, err := mock.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, mock.DeleteAssignment(ctx, "1"))
	rows, err = mock.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].ID)
}

func TestMockRegister(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()

	err := mock.Register(ctx, client.RegisterParams{
		Name:     "New Student",
		Email:    "new@test.com",
		Password: "password123",
		Role:     auth.RoleStudent,
	})
	require.NoError(t, err)

	_, err = mock.Login(ctx, "new@test.com", "password123")
	assert.NoError(t, err)

	err = mock.Register(ctx, client.RegisterParams{
		Name:     "Imposter",
		Email:    "student@test.com",
		Password: "password123",
		Role:     auth.RoleStudent,
	})
	require.Error(t, err)
	assert.True(t, srvcerror.IsValidation(err))
}
