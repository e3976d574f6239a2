package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepositoryInterface interface {
	ListTables(ctx context.Context) ([]string, error)
	CountRows(ctx context.Context, table string) (int64, error)
	DropTable(ctx context.Context, table string) error
}

type adminRepository struct {
	storage *pgxpool.Pool
}

func NewAdminRepository(storage *pgxpool.Pool) AdminRepositoryInterface {
	return &adminRepository{storage: storage}
}

func (r *adminRepository) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// CountRows counts rows of an arbitrary table. Table names cannot be
// bound as parameters, so the identifier is sanitized before being
// interpolated.
func (r *adminRepository) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pgx.Identifier{table}.Sanitize())
	if err := r.storage.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DropTable is idempotent: dropping a missing table is not an error.
func (r *adminRepository) DropTable(ctx context.Context, table string) error {
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{table}.Sanitize())
	_, err := r.storage.Exec(ctx, query)
	return err
}
