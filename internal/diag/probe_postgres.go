package diag

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresProber struct {
	db *pgxpool.Pool
}

func NewPostgresProber(db *pgxpool.Pool) *PostgresProber {
	return &PostgresProber{db: db}
}

// Probe lists public tables so the status page can show them
// where Mongo collections would normally appear.
func (p *PostgresProber) Probe(ctx context.Context) Report {
	report := Report{
		Status:           statusAvailable,
		ConnectionStatus: "Connected",
		Collections:      []string{},
	}

	rows, err := p.db.Query(ctx, `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename
	`)
	if err != nil {
		report.Status = statusDegraded + truncateError(err)
		return report
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			report.Status = statusDegraded + truncateError(err)
			return report
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		report.Status = statusDegraded + truncateError(err)
		return report
	}

	if len(tables) > maxCollections {
		tables = tables[:maxCollections]
	}
	if tables != nil {
		report.Collections = tables
	}
	report.Status = statusWorking

	return report
}
