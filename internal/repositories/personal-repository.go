package repositories

import (
	"context"
	"fmt"

	"movilab/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PersonalRepositoryInterface covers both personnel tables; the tables
// are identical so one implementation serves tecnicos and ingenieros.
type PersonalRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Personal, error)
	GetNombres(ctx context.Context) ([]string, error)
	Create(ctx context.Context, nombre string) (uint64, error)
	Update(ctx context.Context, id uint64, nombre string) error
	Delete(ctx context.Context, id uint64) error
}

type personalRepository struct {
	storage *pgxpool.Pool
	table   string
}

func NewTecnicoRepository(storage *pgxpool.Pool) PersonalRepositoryInterface {
	return &personalRepository{storage: storage, table: "tecnicos"}
}

func NewIngenieroRepository(storage *pgxpool.Pool) PersonalRepositoryInterface {
	return &personalRepository{storage: storage, table: "ingenieros"}
}

func (r *personalRepository) GetAll(ctx context.Context) ([]entities.Personal, error) {
	query := fmt.Sprintf("SELECT id, nombre FROM %s ORDER BY id", r.table)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personas := make([]entities.Personal, 0)
	for rows.Next() {
		var p entities.Personal
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (r *personalRepository) GetNombres(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT nombre FROM %s ORDER BY id", r.table)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nombres := make([]string, 0)
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, err
		}
		nombres = append(nombres, nombre)
	}
	return nombres, rows.Err()
}

func (r *personalRepository) Create(ctx context.Context, nombre string) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (nombre) VALUES ($1) RETURNING id", r.table)
	var id uint64
	err := r.storage.QueryRow(ctx, query, nombre).Scan(&id)
	return id, err
}

// Update does not distinguish a missing id from an unchanged row; the
// legacy management page reports success either way.
func (r *personalRepository) Update(ctx context.Context, id uint64, nombre string) error {
	query := fmt.Sprintf("UPDATE %s SET nombre = $1 WHERE id = $2", r.table)
	_, err := r.storage.Exec(ctx, query, nombre, id)
	return err
}

func (r *personalRepository) Delete(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)
	_, err := r.storage.Exec(ctx, query, id)
	return err
}
