package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO analyses (
	id, api_key, description, primary_type, confidence, services_count, result, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(record.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.APIKey,
		record.Description,
		record.PrimaryType,
		record.Confidence,
		record.ServicesCount,
		payload,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, recordID string) (Record, error) {
	const query = `
SELECT id, api_key, description, primary_type, confidence, services_count, result, created_at
FROM analyses
WHERE id = $1
LIMIT 1`

	var rec Record
	var result sql.NullString
	err := r.DB.QueryRowContext(ctx, query, recordID).Scan(
		&rec.ID,
		&rec.APIKey,
		&rec.Description,
		&rec.PrimaryType,
		&rec.Confidence,
		&rec.ServicesCount,
		&result,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if result.Valid {
		if err := json.Unmarshal([]byte(result.String), &rec.Result); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}

// ListByKey lists records for an API key ordered newest-first.
func (r *PGRepo) ListByKey(ctx context.Context, apiKey string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, api_key, description, primary_type, confidence, services_count, result, created_at
FROM analyses
WHERE api_key = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, apiKey, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var result sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.APIKey,
			&rec.Description,
			&rec.PrimaryType,
			&rec.Confidence,
			&rec.ServicesCount,
			&result,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if result.Valid {
			if err := json.Unmarshal([]byte(result.String), &rec.Result); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
