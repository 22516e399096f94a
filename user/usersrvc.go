package user

import (
	"context"
)

// Repo is the storage boundary of the user service. The in-memory
// implementation backs tests and mock mode, the pgx one production.
type Repo interface {
	InsertUser(ctx context.Context, row User) error
	SelectAllUsers(ctx context.Context) ([]User, error)
}

type UserSrvc struct {
	repo Repo
}

func NewUserSrvc(repo Repo) *UserSrvc {
	return &UserSrvc{repo: repo}
}
