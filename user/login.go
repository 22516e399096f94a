package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func (s *UserSrvc) Login(ctx context.Context, email string, password string) (*User, error) {
	allUsers, err := s.repo.SelectAllUsers(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, user := range allUsers {
		if user.Email == email {
			err = bcrypt.CompareHashAndPassword([]byte(user.BcryptPwd), []byte(password))
			if err == nil {
				u := user
				return &u, nil
			}
		}
	}

	return nil, newErrEmailOrPasswordIncorrect()
}
