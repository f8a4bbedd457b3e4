package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const eventosTable = "eventos e"

type EventoRepository interface {
	// CountActivos conta os eventos ativos do estúdio.
	CountActivos(ctx context.Context, studioID int) (int, error)

	// CountByPeriod conta os eventos não cancelados com data dentro do período.
	CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error)

	// TopTipoByPeriod retorna o tipo de evento com mais eventos ativos no
	// período, ou nil quando não há eventos.
	TopTipoByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.EventoTipoConteo, error)
}

type eventoRepository struct {
	conn *postgres.Connection
}

func NewEventoRepository(conn *postgres.Connection) EventoRepository {
	return &eventoRepository{
		conn: conn,
	}
}

func (r *eventoRepository) CountActivos(ctx context.Context, studioID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(eventosTable).
		Where(squirrel.Eq{"e.studio_id": studioID, "e.status": domain.EventoStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar eventos ativos: %w", err)
	}

	return total, nil
}

func (r *eventoRepository) CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(eventosTable).
		Where(squirrel.Eq{"e.studio_id": studioID}).
		Where(squirrel.NotEq{"e.status": domain.EventoStatusCancelled}).
		Where(squirrel.GtOrEq{"e.fecha_evento": start}).
		Where(squirrel.LtOrEq{"e.fecha_evento": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar eventos do período: %w", err)
	}

	return total, nil
}

func (r *eventoRepository) TopTipoByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.EventoTipoConteo, error) {
	query, args, err := squirrel.
		Select("t.nombre, COUNT(e.id) AS cantidad").
		From(eventosTable).
		Join("evento_tipos t ON t.id = e.evento_tipo_id").
		Where(squirrel.Eq{"e.studio_id": studioID, "e.status": domain.EventoStatusActive}).
		Where(squirrel.GtOrEq{"e.fecha_evento": start}).
		Where(squirrel.LtOrEq{"e.fecha_evento": end}).
		GroupBy("t.nombre").
		OrderBy("cantidad DESC", "t.nombre ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conteo := &domain.EventoTipoConteo{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&conteo.Nombre, &conteo.Cantidad)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar tipo de evento mais popular: %w", err)
	}

	return conteo, nil
}
