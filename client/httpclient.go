package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/srvcerror"
)

// bearerTransport injects the session token into every outgoing request,
// the way the original client attached it via a request interceptor.
type bearerTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

type HttpClient struct {
	baseURL string
	http    *http.Client
}

func NewHttpClient(baseURL string, tokens TokenSource) *HttpClient {
	return &HttpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{
				tokens: tokens,
				base:   http.DefaultTransport,
			},
		},
	}
}

type wireUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type wireAssignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type wireSubmission struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment"`
	Student      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"student"`
	Content     string    `json:"content"`
	FilePath    *string   `json:"filePath"`
	SubmittedAt time.Time `json:"submittedAt"`
	Grade       *int      `json:"grade"`
	Feedback    *string   `json:"feedback"`
}

func mapWireAssignment(a wireAssignment) Assignment {
	return Assignment(a)
}

func mapWireSubmission(s wireSubmission) Submission {
	return Submission{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		StudentName:  s.Student.Name,
		Content:      s.Content,
		FilePath:     s.FilePath,
		SubmittedAt:  s.SubmittedAt,
		Grade:        s.Grade,
		Feedback:     s.Feedback,
	}
}

// do performs one request and decodes the response envelope. A non-nil
// out receives the envelope's data payload.
func (c *HttpClient) do(ctx context.Context, method, path string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newErrUnreachable(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newErrUnreachable(err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Status  string          `json:"status"`
		Data    json.RawMessage `json:"data"`
		ErrCode string          `json:"code"`
		ErrMsg  string          `json:"message"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newErrBadResponse(err)
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return newErrFromEnvelope(resp.StatusCode, "", strings.TrimSpace(string(raw)))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || envelope.Status != "success" {
		return newErrFromEnvelope(resp.StatusCode, envelope.ErrCode, envelope.ErrMsg)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return newErrBadResponse(err)
		}
	}
	return nil
}

func (c *HttpClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return srvcerror.ErrInternalSE().SetDebug(err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

func (c *HttpClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := map[string]string{"email": email, "password": password}
	var data struct {
		User  wireUser `json:"user"`
		Token string   `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &data); err != nil {
		return nil, err
	}

	role, err := auth.ParseRole(data.User.Role)
	if err != nil {
		return nil, newErrBadResponse(err)
	}

	return &LoginResult{
		User: Identity{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Email: data.User.Email,
			Role:  role,
		},
		Token: data.Token,
	}, nil
}

func (c *HttpClient) Register(ctx context.Context, p RegisterParams) error {
	req := map[string]string{
		"name":     p.Name,
		"email":    p.Email,
		"password": p.Password,
		"role":     p.Role.String(),
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *HttpClient) ListAssignments(ctx context.Context) ([]Assignment, error) {
	var data []wireAssignment
	if err := c.doJSON(ctx, http.MethodGet, "/assignments", nil, &data); err != nil {
		return nil, err
	}
	res := make([]Assignment, 0, len(data))
	for _, a := range data {
		res = append(res, mapWireAssignment(a))
	}
	return res, nil
}

func (c *HttpClient) CreateAssignment(ctx context.Context, p CreateAssignmentParams) (*Assignment, error) {
	req := map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"dueDate":     p.DueDate,
	}
	var data wireAssignment
	if err := c.doJSON(ctx, http.MethodPost, "/assignments", req, &data); err != nil {
		return nil, err
	}
	res := mapWireAssignment(data)
	return &res, nil
}

func (c *HttpClient) DeleteAssignment(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/assignments/"+id, nil, nil)
}

func (c *HttpClient) ListSubmissions(ctx context.Context) ([]Submission, error) {
	var data []wireSubmission
	if err := c.doJSON(ctx, http.MethodGet, "/submissions", nil, &data); err != nil {
		return nil, err
	}
	res := make([]Submission, 0, len(data))
	for _, s := range data {
		res = append(res, mapWireSubmission(s))
	}
	return res, nil
}

func (c *HttpClient) ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]Submission, error) {
	var data []wireSubmission
	err := c.doJSON(ctx, http.MethodGet, "/submissions/assignment/"+assignmentID, nil, &data)
	if err != nil {
		return nil, err
	}
	res := make([]Submission, 0, len(data))
	for _, s := range data {
		res = append(res, mapWireSubmission(s))
	}
	return res, nil
}

func (c *HttpClient) CreateSubmission(ctx context.Context, p CreateSubmissionParams) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("assignment", p.AssignmentID); err != nil {
		return srvcerror.ErrInternalSE().SetDebug(err)
	}
	if err := mw.WriteField("content", p.Content); err != nil {
		return srvcerror.ErrInternalSE().SetDebug(err)
	}
	if len(p.FileContent) > 0 {
		fw, err := mw.CreateFormFile("file", p.FileName)
		if err != nil {
			return srvcerror.ErrInternalSE().SetDebug(err)
		}
		if _, err := fw.Write(p.FileContent); err != nil {
			return srvcerror.ErrInternalSE().SetDebug(err)
		}
	}
	if err := mw.Close(); err != nil {
		return srvcerror.ErrInternalSE().SetDebug(err)
	}

	return c.do(ctx, http.MethodPost, "/submissions", mw.FormDataContentType(), &buf, nil)
}

func (c *HttpClient) GradeSubmission(ctx context.Context, p GradeParams) error {
	req := map[string]any{
		"grade":    p.Grade,
		"feedback": p.Feedback,
	}
	path := fmt.Sprintf("/submissions/%s/grade", p.SubmissionID)
	return c.doJSON(ctx, http.MethodPut, path, req, nil)
}
