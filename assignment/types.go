package assignment

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	CreatedAt   time.Time
}
