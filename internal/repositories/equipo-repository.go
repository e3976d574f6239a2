package repositories

import (
	"context"
	"errors"
	"fmt"

	"movilab/internal/entities"
	apperrors "movilab/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipoTable  = "equipos"
	equipoFields = "id, movimiento, tipo_equipo, tarjetas_ingresadas, direccion, " +
		"nombre_entrega, nombre_recibe, observaciones, estado, fecha_notificacion, " +
		"fecha_revision, diagnostico_revision, " +
		"fecha_reparacion, diagnostico_reparacion, nombre_reparador, " +
		"fecha_entrega, diagnostico_entrega, nombre_entrega_revisado, " +
		"nombre_recibe_revisado, direccion_entrega"
)

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context) ([]entities.Equipo, error)
	FindEquipo(ctx context.Context, id uint64) (*entities.Equipo, error)
	GetUltimosEquipos(ctx context.Context, limit uint64) ([]entities.Equipo, error)
	SearchByDireccion(ctx context.Context, direccion string) ([]entities.Equipo, error)
	CreateEquipo(ctx context.Context, e entities.Equipo) (uint64, error)
	CreateDireccion(ctx context.Context, direccion string) (uint64, error)
	SaveRevision(ctx context.Context, id uint64, fecha, diagnostico string) error
	SaveReparacion(ctx context.Context, id uint64, fecha, diagnostico, reparador string) error
	DeleteEquipo(ctx context.Context, id uint64) error
}

type equipoRepository struct {
	storage *pgxpool.Pool
}

func NewEquipoRepository(storage *pgxpool.Pool) EquipoRepositoryInterface {
	return &equipoRepository{storage: storage}
}

func scanEquipo(row pgx.Row, e *entities.Equipo) error {
	return row.Scan(
		&e.ID, &e.Movimiento, &e.TipoEquipo, &e.TarjetasIngresadas, &e.Direccion,
		&e.NombreEntrega, &e.NombreRecibe, &e.Observaciones, &e.Estado, &e.FechaNotificacion,
		&e.FechaRevision, &e.DiagnosticoRevision,
		&e.FechaReparacion, &e.DiagnosticoReparacion, &e.NombreReparador,
		&e.FechaEntrega, &e.DiagnosticoEntrega, &e.NombreEntregaRevisado,
		&e.NombreRecibeRevisado, &e.DireccionEntrega,
	)
}

func (r *equipoRepository) collect(rows pgx.Rows) ([]entities.Equipo, error) {
	defer rows.Close()
	equipos := make([]entities.Equipo, 0)
	for rows.Next() {
		var e entities.Equipo
		if err := scanEquipo(rows, &e); err != nil {
			return nil, err
		}
		equipos = append(equipos, e)
	}
	return equipos, rows.Err()
}

func (r *equipoRepository) GetEquipos(ctx context.Context) ([]entities.Equipo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", equipoFields, equipoTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *equipoRepository) FindEquipo(ctx context.Context, id uint64) (*entities.Equipo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipoFields, equipoTable)
	var e entities.Equipo
	if err := scanEquipo(r.storage.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *equipoRepository) GetUltimosEquipos(ctx context.Context, limit uint64) ([]entities.Equipo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id DESC LIMIT $1", equipoFields, equipoTable)
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// SearchByDireccion returns every record whose address contains the
// fragment. Unpaginated, same as the front end expects.
func (r *equipoRepository) SearchByDireccion(ctx context.Context, direccion string) ([]entities.Equipo, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipoFields).
		From(equipoTable).
		Where(sq.Like{"direccion": "%" + direccion + "%"}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *equipoRepository) CreateEquipo(ctx context.Context, e entities.Equipo) (uint64, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(movimiento, tipo_equipo, tarjetas_ingresadas, direccion, nombre_entrega,
		 nombre_recibe, observaciones, estado, fecha_notificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`, equipoTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		e.Movimiento, e.TipoEquipo, e.TarjetasIngresadas, e.Direccion,
		e.NombreEntrega, e.NombreRecibe, e.Observaciones, e.Estado, e.FechaNotificacion,
	).Scan(&id)
	return id, err
}

func (r *equipoRepository) CreateDireccion(ctx context.Context, direccion string) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (direccion) VALUES ($1) RETURNING id", equipoTable)
	var id uint64
	err := r.storage.QueryRow(ctx, query, direccion).Scan(&id)
	return id, err
}

func (r *equipoRepository) SaveRevision(ctx context.Context, id uint64, fecha, diagnostico string) error {
	query := fmt.Sprintf(`UPDATE %s
		SET fecha_revision = $1, diagnostico_revision = $2, estado = $3
		WHERE id = $4`, equipoTable)

	tag, err := r.storage.Exec(ctx, query, fecha, diagnostico, entities.EstadoRevisado, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *equipoRepository) SaveReparacion(ctx context.Context, id uint64, fecha, diagnostico, reparador string) error {
	query := fmt.Sprintf(`UPDATE %s
		SET fecha_reparacion = $1, diagnostico_reparacion = $2, nombre_reparador = $3, estado = $4
		WHERE id = $5`, equipoTable)

	tag, err := r.storage.Exec(ctx, query, fecha, diagnostico, reparador, entities.EstadoReparado, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEquipo succeeds even when the id does not exist.
func (r *equipoRepository) DeleteEquipo(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipoTable)
	_, err := r.storage.Exec(ctx, query, id)
	return err
}
