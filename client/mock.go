package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/srvcerror"
)

// mockJwtKey signs tokens issued by the mock so that session rehydration
// handles them exactly like real ones. Dev-only, never used by a server.
var mockJwtKey = []byte("subassign-mock-key")

type mockUser struct {
	identity Identity
	password string
}

// Mock is the in-memory stand-in for the real API, seeded with the same
// fixture data the backend team uses. It enforces the same business
// rules as the server so the UI behaves identically in both modes.
type Mock struct {
	mu          sync.Mutex
	users       []mockUser
	assignments []Assignment
	submissions []Submission
	current     *Identity
	nextID      int
}

func NewMock() *Mock {
	grade := 85
	feedback := "Good work! Could improve on problem 7."
	return &Mock{
		users: []mockUser{
			{
				identity: Identity{
					ID:    "1",
					Name:  "Instructor User",
					Email: "instructor@test.com",
					Role:  auth.RoleInstructor,
				},
				password: "instructor123",
			},
			{
				identity: Identity{
					ID:    "2",
					Name:  "Student User",
					Email: "student@test.com",
					Role:  auth.RoleStudent,
				},
				password: "student123",
			},
		},
		assignments: []Assignment{
			{
				ID:          "1",
				Title:       "Math Assignment 1",
				Description: "Complete exercises 1-10 from chapter 3",
				DueDate:     time.Date(2024, 2, 15, 23, 59, 0, 0, time.UTC),
				CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:          "2",
				Title:       "Science Project",
				Description: "Create a presentation on renewable energy",
				DueDate:     time.Date(2024, 2, 20, 23, 59, 0, 0, time.UTC),
				CreatedAt:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
			},
		},
		submissions: []Submission{
			{
				ID:           "1",
				AssignmentID: "1",
				StudentName:  "Student User",
				Content:      "Here is my completed assignment...",
				SubmittedAt:  time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC),
				Grade:        &grade,
				Feedback:     &feedback,
			},
		},
		nextID: 3,
	}
}

func (m *Mock) newID() string {
	id := strconv.Itoa(m.nextID)
	m.nextID++
	return id
}

func newErrMockInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeAuthentication,
		"email or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrMockNotFound(what string) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeNotFound,
		what+" was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrMockValidation(msg string) *srvcerror.Error {
	return srvcerror.New(
		srvcerror.ErrCodeValidation, msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}

func (m *Mock) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.identity.Email == email && u.password == password {
			token, err := auth.GenerateJWT(
				u.identity.Name, u.identity.Email,
				uuid.NewSHA1(uuid.NameSpaceOID, []byte(u.identity.ID)),
				u.identity.Role, mockJwtKey)
			if err != nil {
				return nil, srvcerror.ErrInternalSE().SetDebug(err)
			}
			identity := u.identity
			m.current = &identity
			return &LoginResult{User: identity, Token: token}, nil
		}
	}

	return nil, newErrMockInvalidCredentials()
}

func (m *Mock) Register(ctx context.Context, p RegisterParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.identity.Email == p.Email {
			return newErrMockValidation("email is already registered")
		}
	}

	m.users = append(m.users, mockUser{
		identity: Identity{
			ID:    m.newID(),
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		},
		password: p.Password,
	})
	return nil
}

func (m *Mock) ListAssignments(ctx context.Context) ([]Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]Assignment, len(m.assignments))
	copy(res, m.assignments)
	return res, nil
}

func (m *Mock) CreateAssignment(ctx context.Context, p CreateAssignmentParams) (*Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrMockValidation("assignment title must not be empty")
	}
	if p.DueDate.IsZero() {
		return nil, newErrMockValidation("assignment due date is required")
	}

	created := Assignment{
		ID:          m.newID(),
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		CreatedAt:   time.Now(),
	}
	m.assignments = append(m.assignments, created)
	return &created, nil
}

func (m *Mock) DeleteAssignment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.assignments {
		if a.ID == id {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return newErrMockNotFound("assignment")
}

func (m *Mock) ListSubmissions(ctx context.Context) ([]Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]Submission, len(m.submissions))
	copy(res, m.submissions)
	return res, nil
}

func (m *Mock) ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []Submission
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *Mock) CreateSubmission(ctx context.Context, p CreateSubmissionParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if strings.TrimSpace(p.Content) == "" {
		return newErrMockValidation("submission content must not be empty")
	}

	found := false
	for _, a := range m.assignments {
		if a.ID == p.AssignmentID {
			found = true
			break
		}
	}
	if !found {
		return newErrMockValidation("submission references an unknown assignment")
	}

	studentName := "Student User"
	if m.current != nil {
		studentName = m.current.Name
	}

	created := Submission{
		ID:           m.newID(),
		AssignmentID: p.AssignmentID,
		StudentName:  studentName,
		Content:      p.Content,
		SubmittedAt:  time.Now(),
	}
	if len(p.FileContent) > 0 {
		path := "uploads/" + created.ID + "/" + p.FileName
		created.FilePath = &path
	}
	m.submissions = append(m.submissions, created)
	return nil
}

func (m *Mock) GradeSubmission(ctx context.Context, p GradeParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Grade < 0 || p.Grade > 100 {
		return newErrMockValidation("grade must be between 0 and 100")
	}

	for i := range m.submissions {
		if m.submissions[i].ID == p.SubmissionID {
			grade := p.Grade
			m.submissions[i].Grade = &grade
			m.submissions[i].Feedback = p.Feedback
			return nil
		}
	}
	return newErrMockNotFound("submission")
}
