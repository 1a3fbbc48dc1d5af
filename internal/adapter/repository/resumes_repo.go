package repository

import (
	"context"
	"encoding/json"
	"errors"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresResumesRepo persists resume records in the user_resumes table,
// with the document fields as a JSONB column.
type PostgresResumesRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresResumesRepo(pool *pgxpool.Pool) *PostgresResumesRepo {
	return &PostgresResumesRepo{pool: pool}
}

func (r *PostgresResumesRepo) Insert(ctx context.Context, rec *domain.ResumeRecord) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO user_resumes (id, document_id, user_email, user_name, title, fields, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.DocumentID, rec.UserEmail, rec.UserName, rec.Title, fields, rec.CreatedAt, rec.UpdatedAt)
	return err
}

func scanRecord(row pgx.Row) (*domain.ResumeRecord, error) {
	var rec domain.ResumeRecord
	var fields []byte
	err := row.Scan(&rec.ID, &rec.DocumentID, &rec.UserEmail, &rec.UserName, &rec.Title, &fields, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &rec.Fields); err != nil {
			return nil, err
		}
	}
	if rec.Fields == nil {
		rec.Fields = map[string]interface{}{}
	}
	return &rec, nil
}

const selectCols = `id, document_id, user_email, user_name, title, fields, created_at, updated_at`

func (r *PostgresResumesRepo) ListByOwner(ctx context.Context, userEmail string) ([]*domain.ResumeRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectCols+` FROM user_resumes WHERE user_email = $1`, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ResumeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresResumesRepo) GetByDocumentID(ctx context.Context, documentID string) (*domain.ResumeRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectCols+` FROM user_resumes WHERE document_id = $1`, documentID)
	return scanRecord(row)
}

func (r *PostgresResumesRepo) Update(ctx context.Context, rec *domain.ResumeRecord) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE user_resumes SET title = $2, fields = $3, updated_at = $4 WHERE document_id = $1`,
		rec.DocumentID, rec.Title, fields, rec.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresResumesRepo) DeleteByDocumentID(ctx context.Context, documentID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_resumes WHERE document_id = $1`, documentID)
	return err
}
