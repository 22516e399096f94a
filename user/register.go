package user

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/subassign/portal/auth"
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func validateName(name string) error {
	const minNameLength = 2
	const maxNameLength = 64
	if len(name) < minNameLength {
		return newErrNameTooShort(minNameLength)
	}
	if len(name) > maxNameLength {
		return newErrNameTooLong(maxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return newErrEmailEmpty()
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newErrEmailInvalid()
	}
	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	const maxPasswordLength = 72 // bcrypt input limit
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return newErrPasswordTooLong()
	}
	return nil
}

func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (*User, error) {
	if err := validateName(p.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	role, err := auth.ParseRole(p.Role)
	if err != nil {
		return nil, newErrInvalidRole()
	}

	all, err := s.repo.SelectAllUsers(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range all {
		// email must be unique
		if user.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := User{
		UUID:      uuid.New(),
		Name:      p.Name,
		Email:     p.Email,
		Role:      role,
		BcryptPwd: string(bcryptPwd),
		CreatedAt: time.Now(),
	}

	if err := s.repo.InsertUser(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &row, nil
}
