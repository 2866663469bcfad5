package builds

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save build
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, build *BuildRecord) (string, error) {
	// Generate UUID if not already set
	if build.ID == "" {
		build.ID = uuid.New().String()
	}

	query := `
		INSERT INTO builds (
			id,
			selection,
			total,
			currency,
			author,
			note
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	// pgx encodes the selection struct as JSONB directly
	err := r.db.QueryRow(
		ctx,
		query,
		build.ID,
		build.Selection,
		build.Total,
		build.Currency,
		build.Author,
		build.Note,
	).Scan(&build.CreatedAt)
	if err != nil {
		return "", err
	}

	return build.ID, nil
}

// --------------------------------------------------
// List most recent builds (newest first)
// --------------------------------------------------
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			selection,
			total,
			currency,
			COALESCE(author, ''),
			COALESCE(note, ''),
			created_at
		FROM builds
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*BuildRecord

	for rows.Next() {
		var rec BuildRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Selection,
			&rec.Total,
			&rec.Currency,
			&rec.Author,
			&rec.Note,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
