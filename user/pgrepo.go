package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subassign/portal/auth"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

func (r *PgRepo) InsertUser(ctx context.Context, row User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (uuid, name, email, role, bcrypt_pwd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, row.UUID, row.Name, row.Email, string(row.Role), row.BcryptPwd, row.CreatedAt)
	return err
}

func (r *PgRepo) SelectAllUsers(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, name, email, role, bcrypt_pwd, created_at
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []User
	for rows.Next() {
		var u User
		var role string
		if err := rows.Scan(&u.UUID, &u.Name, &u.Email, &role, &u.BcryptPwd, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role, err = auth.ParseRole(role)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}
