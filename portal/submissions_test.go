package portal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/portal"
	"github.com/subassign/portal/srvcerror"
)

type stubSubmissionClient struct {
	client.Client

	createCalls int
	gradeCalls  int
}

func (s *stubSubmissionClient) CreateSubmission(ctx context.Context, p client.CreateSubmissionParams) error {
	s.createCalls++
	return nil
}

func (s *stubSubmissionClient) GradeSubmission(ctx context.Context, p client.GradeParams) error {
	s.gradeCalls++
	return nil
}

func TestSubmitRejectsBlankContent(t *testing.T) {
	stub := &stubSubmissionClient{}
	board := portal.NewSubmissionBoard(stub, loggedInSessions(t))

	testCases := []string{"", "   ", "\t\n"}
	for _, content := range testCases {
		err := board.Submit(context.Background(), portal.SubmitParams{
			AssignmentID: "1",
			Content:      content,
		})
		require.Error(t, err)
		assert.True(t, srvcerror.IsValidation(err))
	}
	assert.Zero(t, stub.createCalls, "blank content must never reach the client")

	err := board.Submit(context.Background(), portal.SubmitParams{
		AssignmentID: "1",
		Content:      "real work",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stub.createCalls)
}

func TestGradeInputValidation(t *testing.T) {
	stub := &stubSubmissionClient{}
	board := portal.NewSubmissionBoard(stub, loggedInSessions(t))

	testCases := []struct {
		name     string
		rawGrade string
	}{
		{name: "not a number", rawGrade: "eighty"},
		{name: "empty", rawGrade: ""},
		{name: "above range", rawGrade: "101"},
		{name: "below range", rawGrade: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := board.Grade(context.Background(), "1", tc.rawGrade, "")
			require.Error(t, err)
			assert.True(t, srvcerror.IsValidation(err))
		})
	}
	assert.Zero(t, stub.gradeCalls, "invalid grades must never reach the client")

	// surrounding whitespace is tolerated
	require.NoError(t, board.Grade(context.Background(), "1", " 85 ", ""))
	assert.Equal(t, 1, stub.gradeCalls)
}

func TestGradeUpdatesHeldSubmission(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()
	board := portal.NewSubmissionBoard(mock, loggedInSessions(t))
	require.NoError(t, board.Refresh(ctx))
	require.Len(t, board.Items(), 1)

	board.OpenGrading("1")
	require.NoError(t, board.Grade(ctx, "1", "90", "solid improvement"))

	items := board.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Grade)
	assert.Equal(t, 90, *items[0].Grade)
	require.NotNil(t, items[0].Feedback)
	assert.Equal(t, "solid improvement", *items[0].Feedback)
	assert.False(t, board.GradingOpen("1"), "grading closes on success")
}

func TestGradeFailureKeepsGradingOpen(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()
	board := portal.NewSubmissionBoard(mock, loggedInSessions(t))
	require.NoError(t, board.Refresh(ctx))

	board.OpenGrading("999")
	err := board.Grade(ctx, "999", "90", "")
	require.Error(t, err)
	assert.True(t, srvcerror.IsNotFound(err))
	assert.True(t, board.GradingOpen("999"), "failed grading stays open for a retry")

	// the held collection is untouched by the failure
	items := board.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Grade)
	assert.Equal(t, 85, *items[0].Grade)
}

func TestGradingFlagsAreIndependent(t *testing.T) {
	board := portal.NewSubmissionBoard(client.NewMock(), loggedInSessions(t))

	board.OpenGrading("1")
	board.OpenGrading("2")
	assert.True(t, board.GradingOpen("1"))
	assert.True(t, board.GradingOpen("2"))
	assert.False(t, board.GradingOpen("3"))

	board.CancelGrading("1")
	assert.False(t, board.GradingOpen("1"))
	assert.True(t, board.GradingOpen("2"))
}

func TestRefreshByAssignment(t *testing.T) {
	ctx := context.Background()
	mock := client.NewMock()
	board := portal.NewSubmissionBoard(mock, loggedInSessions(t))

	require.NoError(t, board.RefreshByAssignment(ctx, "1"))
	assert.Len(t, board.Items(), 1)

	require.NoError(t, board.RefreshByAssignment(ctx, "2"))
	assert.Empty(t, board.Items())
}

func TestSubmitAuthFailureClearsSession(t *testing.T) {
	sessions := loggedInSessions(t)
	stub := &stubErrClient{
		err: srvcerror.New(srvcerror.ErrCodeAuthentication, "token expired"),
	}
	board := portal.NewSubmissionBoard(stub, sessions)

	err := board.Submit(context.Background(), portal.SubmitParams{
		AssignmentID: "1",
		Content:      "real work",
	})
	require.Error(t, err)
	assert.True(t, srvcerror.IsAuthentication(err))
	assert.Nil(t, sessions.CurrentUser())
}

type stubErrClient struct {
	client.Client
	err error
}

func (s *stubErrClient) CreateSubmission(ctx context.Context, p client.CreateSubmissionParams) error {
	return s.err
}
