package auth

import (
	"fmt"
)

// Role is the closed set of account roles. Anything else coming off the
// wire is rejected at parse time so call sites never compare raw strings.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleInstructor:
		return RoleInstructor, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
