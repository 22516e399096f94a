package http

import (
	"time"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/submission"
	"github.com/subassign/portal/user"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func mapUser(u *user.User) User {
	return User{
		ID:    u.UUID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}

type Assignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func mapAssignment(a assignment.Assignment) Assignment {
	return Assignment{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
	}
}

type SubmissionStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Submission struct {
	ID           string            `json:"id"`
	AssignmentID string            `json:"assignment"`
	Student      SubmissionStudent `json:"student"`
	Content      string            `json:"content"`
	FilePath     *string           `json:"filePath,omitempty"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	Grade        *int              `json:"grade,omitempty"`
	Feedback     *string           `json:"feedback,omitempty"`
}

func mapSubmission(s submission.Submission) Submission {
	return Submission{
		ID:           s.ID.String(),
		AssignmentID: s.AssignmentID.String(),
		Student: SubmissionStudent{
			ID:   s.StudentUUID.String(),
			Name: s.StudentName,
		},
		Content:     s.Content,
		FilePath:    s.FilePath,
		SubmittedAt: s.SubmittedAt,
		Grade:       s.Grade,
		Feedback:    s.Feedback,
	}
}
