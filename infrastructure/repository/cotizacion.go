package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const cotizacionesTable = "cotizaciones co"

type CotizacionRepository interface {
	// ListAprobadasConSaldo retorna as cotizações aprovadas/autorizadas de
	// eventos com data até o corte informado, cada uma com a soma acumulada
	// dos pagamentos quitados. O corte é o fim do mês corrente: meses
	// anteriores com saldo em aberto entram, meses futuros não.
	ListAprobadasConSaldo(ctx context.Context, studioID int, cutoff time.Time) ([]*domain.CotizacionBalance, error)

	// CountByPeriod conta as cotizações criadas no período e quantas delas
	// foram aprovadas/autorizadas.
	CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CotizacionConteo, error)
}

type cotizacionRepository struct {
	conn *postgres.Connection
}

func NewCotizacionRepository(conn *postgres.Connection) CotizacionRepository {
	return &cotizacionRepository{
		conn: conn,
	}
}

func (r *cotizacionRepository) ListAprobadasConSaldo(ctx context.Context, studioID int, cutoff time.Time) ([]*domain.CotizacionBalance, error) {
	query, args, err := squirrel.
		Select(
			"co.id",
			"e.nombre",
			"cl.nombre",
			"co.precio",
			"co.descuento",
			"COALESCE(SUM(p.monto) FILTER (WHERE p.status IN ('paid', 'completed')), 0) AS total_pagado",
		).
		From(cotizacionesTable).
		Join("eventos e ON e.id = co.evento_id").
		Join("clientes cl ON cl.id = e.cliente_id").
		LeftJoin("pagos p ON p.cotizacion_id = co.id").
		Where(squirrel.Eq{"co.studio_id": studioID}).
		Where(squirrel.Eq{"co.status": []string{domain.CotizacionStatusApproved, domain.CotizacionStatusAuthorized}}).
		Where(squirrel.LtOrEq{"e.fecha_evento": cutoff}).
		GroupBy("co.id", "e.nombre", "cl.nombre", "co.precio", "co.descuento", "e.fecha_evento").
		OrderBy("e.fecha_evento ASC", "co.id ASC").
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

	cotizaciones := make([]*domain.CotizacionBalance, 0)
	for rows.Next() {
		cot := &domain.CotizacionBalance{}
		err := rows.Scan(
			&cot.CotizacionID,
			&cot.EventoNombre,
			&cot.ClienteNombre,
			&cot.Precio,
			&cot.Descuento,
			&cot.TotalPagado,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cotização: %w", err)
		}
		cotizaciones = append(cotizaciones, cot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cotizaciones, nil
}

func (r *cotizacionRepository) CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CotizacionConteo, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE co.status IN ('approved', 'authorized'))",
		).
		From(cotizacionesTable).
		Where(squirrel.Eq{"co.studio_id": studioID}).
		Where(squirrel.GtOrEq{"co.created_at": start}).
		Where(squirrel.LtOrEq{"co.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conteo := &domain.CotizacionConteo{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&conteo.Total, &conteo.Aprobadas); err != nil {
		return nil, fmt.Errorf("erro ao contar cotizações do período: %w", err)
	}

	return conteo, nil
}
