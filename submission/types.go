package submission

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	StudentUUID  uuid.UUID
	StudentName  string
	Content      string
	FilePath     *string
	SubmittedAt  time.Time
	Grade        *int
	Feedback     *string
}

// Graded reports whether an instructor has issued a grade yet.
func (s Submission) Graded() bool {
	return s.Grade != nil
}
