package submission

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

const selectColumns = `
	id, assignment_id, student_uuid, student_name,
	content, file_path, submitted_at, grade, feedback
`

func scanSubmission(row pgx.Row) (Submission, error) {
	var s Submission
	err := row.Scan(
		&s.ID, &s.AssignmentID, &s.StudentUUID, &s.StudentName,
		&s.Content, &s.FilePath, &s.SubmittedAt, &s.Grade, &s.Feedback)
	return s, err
}

func (r *PgRepo) InsertSubmission(ctx context.Context, row Submission) error {
	log := logger.FromContext(ctx)
	log.Debug("storing submission", "id", row.ID, "assignment_id", row.AssignmentID)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, row.ID, row.AssignmentID, row.StudentUUID, row.StudentName,
		row.Content, row.FilePath, row.SubmittedAt, row.Grade, row.Feedback)
	return err
}

func (r *PgRepo) selectWhere(ctx context.Context, where string, args ...any) ([]Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM submissions `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *PgRepo) SelectAllSubmissions(ctx context.Context) ([]Submission, error) {
	return r.selectWhere(ctx, "")
}

func (r *PgRepo) SelectByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	return r.selectWhere(ctx, "WHERE assignment_id = $1", assignmentID)
}

func (r *PgRepo) SelectSubmission(ctx context.Context, id uuid.UUID) (Submission, error) {
	s, err := scanSubmission(r.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM submissions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Submission{}, ErrNotFound
	}
	return s, err
}

func (r *PgRepo) UpdateGrade(ctx context.Context, id uuid.UUID, grade int, feedback *string) error {
	log := logger.FromContext(ctx)
	log.Debug("storing grade", "id", id, "grade", grade)

	tag, err := r.pool.Exec(ctx, `
		UPDATE submissions SET grade = $2, feedback = $3 WHERE id = $1
	`, id, grade, feedback)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
