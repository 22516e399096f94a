// Package client is the typed boundary between the portal UI layer and
// the remote assignment API. Two implementations exist behind the same
// interface: a real HTTP client and a seeded in-memory mock. Which one a
// process uses is decided exactly once, from configuration, when the
// client is constructed.
package client

import (
	"context"
	"time"

	"github.com/subassign/portal/auth"
)

type Identity struct {
	ID    string
	Name  string
	Email string
	Role  auth.Role
}

type Assignment struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	CreatedAt   time.Time
}

type Submission struct {
	ID           string
	AssignmentID string
	StudentName  string
	Content      string
	FilePath     *string
	SubmittedAt  time.Time
	Grade        *int
	Feedback     *string
}

type LoginResult struct {
	User  Identity
	Token string
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     auth.Role
}

type CreateAssignmentParams struct {
	Title       string
	Description string
	DueDate     time.Time
}

type CreateSubmissionParams struct {
	AssignmentID string
	Content      string

	// Optional attachment.
	FileName    string
	FileContent []byte
}

type GradeParams struct {
	SubmissionID string
	Grade        int
	Feedback     *string
}

// Client is the Domain Client. Every method may fail with a srvcerror
// carrying one of the taxonomy codes; transport failures map onto
// network_error so callers can tell "rejected" from "never attempted".
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, p RegisterParams) error

	ListAssignments(ctx context.Context) ([]Assignment, error)
	CreateAssignment(ctx context.Context, p CreateAssignmentParams) (*Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	ListSubmissions(ctx context.Context) ([]Submission, error)
	ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]Submission, error)
	CreateSubmission(ctx context.Context, p CreateSubmissionParams) error
	GradeSubmission(ctx context.Context, p GradeParams) error
}

// TokenSource supplies the bearer credential attached to authenticated
// requests. The session store implements it.
type TokenSource interface {
	Token() string
}

type Mode string

const (
	ModeMock Mode = "mock"
	ModeHTTP Mode = "http"
)

type Config struct {
	Mode    Mode   `toml:"mode"`
	BaseURL string `toml:"base_url"`
}

// New resolves the mock-vs-real switch once. Call sites never branch on
// the mode again.
func New(cfg Config, tokens TokenSource) Client {
	if cfg.Mode == ModeMock {
		return NewMock()
	}
	return NewHttpClient(cfg.BaseURL, tokens)
}
