package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const agendaTable = "agenda a"

type AgendaRepository interface {
	// ListByPeriod retorna os itens de agenda do período, excluindo cancelados,
	// em ordem cronológica ascendente, com nomes de evento/cliente/etapa
	// resolvidos por join.
	ListByPeriod(ctx context.Context, studioID int, start, end time.Time, limit uint64) ([]*domain.AgendaItemRow, error)

	// CountByPeriod conta os itens de agenda não cancelados do período.
	CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error)
}

type agendaRepository struct {
	conn *postgres.Connection
}

func NewAgendaRepository(conn *postgres.Connection) AgendaRepository {
	return &agendaRepository{
		conn: conn,
	}
}

func (r *agendaRepository) ListByPeriod(ctx context.Context, studioID int, start, end time.Time, limit uint64) ([]*domain.AgendaItemRow, error) {
	query, args, err := squirrel.
		Select("a.id, a.fecha, a.hora, a.concepto, e.id, e.nombre, e.sede, c.nombre, et.nombre").
		From(agendaTable).
		Join("eventos e ON e.id = a.evento_id").
		Join("clientes c ON c.id = e.cliente_id").
		LeftJoin("etapas et ON et.id = e.etapa_id").
		Where(squirrel.Eq{"a.studio_id": studioID}).
		Where(squirrel.NotEq{"a.status": domain.AgendaStatusCancelled}).
		Where(squirrel.GtOrEq{"a.fecha": start}).
		Where(squirrel.LtOrEq{"a.fecha": end}).
		OrderBy("a.fecha ASC", "a.hora ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.AgendaItemRow, 0)
	for rows.Next() {
		item := &domain.AgendaItemRow{}
		err := rows.Scan(
			&item.ID,
			&item.Fecha,
			&item.Hora,
			&item.Concepto,
			&item.EventoID,
			&item.EventoNombre,
			&item.Sede,
			&item.ClienteNombre,
			&item.EtapaNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item de agenda: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *agendaRepository) CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(agendaTable).
		Where(squirrel.Eq{"a.studio_id": studioID}).
		Where(squirrel.NotEq{"a.status": domain.AgendaStatusCancelled}).
		Where(squirrel.GtOrEq{"a.fecha": start}).
		Where(squirrel.LtOrEq{"a.fecha": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar itens de agenda: %w", err)
	}

	return total, nil
}
