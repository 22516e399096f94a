package assignment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subassign/portal/logger"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

func (r *PgRepo) InsertAssignment(ctx context.Context, row Assignment) error {
	log := logger.FromContext(ctx)
	log.Debug("storing assignment", "id", row.ID, "title", row.Title)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO assignments (id, title, description, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, row.ID, row.Title, row.Description, row.DueDate, row.CreatedAt)
	return err
}

func (r *PgRepo) SelectAllAssignments(ctx context.Context) ([]Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, due_date, created_at
		FROM assignments
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.DueDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *PgRepo) SelectAssignment(ctx context.Context, id uuid.UUID) (Assignment, error) {
	var a Assignment
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, due_date, created_at
		FROM assignments WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Description, &a.DueDate, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Assignment{}, ErrNotFound
	}
	return a, err
}

func (r *PgRepo) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting assignment", "id", id)

	tag, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
