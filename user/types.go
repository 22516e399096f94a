package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/subassign/portal/auth"
)

type User struct {
	UUID      uuid.UUID
	Name      string
	Email     string
	Role      auth.Role
	BcryptPwd string
	CreatedAt time.Time
}
