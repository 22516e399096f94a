package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
	"github.com/subassign/portal/filestore"
	portalhttp "github.com/subassign/portal/http"
	"github.com/subassign/portal/srvcerror"
	"github.com/subassign/portal/submission"
	"github.com/subassign/portal/user"
)

// staticToken is the test stand-in for the session store's token supply.
type staticToken struct {
	token string
}

func (s *staticToken) Token() string { return s.token }

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	files, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	userSrvc := user.NewUserSrvc(user.NewInMemRepo())
	assignmentSrvc := assignment.NewAssignmentSrvc(assignment.NewInMemRepo())
	submSrvc := submission.NewSubmissionSrvc(submission.NewInMemRepo(), assignmentSrvc, files)

	server := portalhttp.NewHttpServer(userSrvc, assignmentSrvc, submSrvc, []byte("client-test-key"))
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func loginAs(t *testing.T, c *client.HttpClient, tokens *staticToken, name, email string, role auth.Role) client.Identity {
	t.Helper()
	ctx := context.Background()

	err := c.Register(ctx, client.RegisterParams{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)

	res, err := c.Login(ctx, email, "password123")
	require.NoError(t, err)
	require.Equal(t, role, res.User.Role)

	tokens.token = res.Token
	return res.User
}

func TestHttpClientRoundTrip(t *testing.T) {
	ts := newBackend(t)
	ctx := context.Background()

	instructorTokens := &staticToken{}
	instructorClient := client.NewHttpClient(ts.URL, instructorTokens)
	loginAs(t, instructorClient, instructorTokens, "Instructor User", "instructor@test.com", auth.RoleInstructor)

	studentTokens := &staticToken{}
	studentClient := client.NewHttpClient(ts.URL, studentTokens)
	loginAs(t, studentClient, studentTokens, "Student User", "student@test.com", auth.RoleStudent)

	created, err := instructorClient.CreateAssignment(ctx, client.CreateAssignmentParams{
		Title:       "Math Homework 1",
		Description: "chapter 3",
		DueDate:     time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	assignments, err := studentClient.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Math Homework 1", assignments[0].Title)

	err = studentClient.CreateSubmission(ctx, client.CreateSubmissionParams{
		AssignmentID: created.ID,
		Content:      "my solution",
		FileName:     "answers.txt",
		FileContent:  []byte("1+1=2\n"),
	})
	require.NoError(t, err)

	rows, err := studentClient.ListSubmissionsByAssignment(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "my solution", rows[0].Content)
	assert.Equal(t, "Student User", rows[0].StudentName)
	assert.NotNil(t, rows[0].FilePath)
	assert.Nil(t, rows[0].Grade)

	feedback := "good work"
	err = instructorClient.GradeSubmission(ctx, client.GradeParams{
		SubmissionID: rows[0].ID,
		Grade:        85,
		Feedback:     &feedback,
	})
	require.NoError(t, err)

	all, err := instructorClient.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Grade)
	assert.Equal(t, 85, *all[0].Grade)

	err = instructorClient.DeleteAssignment(ctx, created.ID)
	require.NoError(t, err)

	assignments, err = instructorClient.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestHttpClientErrorMapping(t *testing.T) {
	ts := newBackend(t)
	ctx := context.Background()

	tokens := &staticToken{}
	c := client.NewHttpClient(ts.URL, tokens)

	t.Run("anonymous call", func(t *testing.T) {
		_, err := c.ListAssignments(ctx)
		require.Error(t, err)
		assert.True(t, srvcerror.IsAuthentication(err))
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, err := c.Login(ctx, "nobody@test.com", "password123")
		require.Error(t, err)
		assert.True(t, srvcerror.IsAuthentication(err))
	})

	loginAs(t, c, tokens, "Instructor User", "instructor@test.com", auth.RoleInstructor)

	t.Run("not found", func(t *testing.T) {
		err := c.DeleteAssignment(ctx, "11111111-1111-1111-1111-111111111111")
		require.Error(t, err)
		assert.True(t, srvcerror.IsNotFound(err))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := c.CreateAssignment(ctx, client.CreateAssignmentParams{
			Title:   "   ",
			DueDate: time.Now(),
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	})

	t.Run("forbidden", func(t *testing.T) {
		err := c.CreateSubmission(ctx, client.CreateSubmissionParams{
			AssignmentID: "11111111-1111-1111-1111-111111111111",
			Content:      "instructors cannot submit",
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsForbidden(err))
	})
}

func TestHttpClientUnreachableServer(t *testing.T) {
	// a closed port: the request never reaches a server
	c := client.NewHttpClient("http://127.0.0.1:1", &staticToken{})

	_, err := c.ListAssignments(context.Background())
	require.Error(t, err)
	assert.True(t, srvcerror.IsNetwork(err))
}
