package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const pagosTable = "pagos p"

type PagoRepository interface {
	// SumPagadoByPeriod soma os pagamentos quitados criados dentro do período.
	// Nota: este recorte é diferente do usado no saldo pendente, que soma os
	// pagamentos de toda a vida da cotização.
	SumPagadoByPeriod(ctx context.Context, studioID int, start, end time.Time) (float64, error)

	// CountPendientesVencidos conta os pagamentos pendentes criados até a data
	// de corte (proxy simples de inadimplência: pendente há 30 dias ou mais,
	// sem cruzar com data de vencimento real).
	CountPendientesVencidos(ctx context.Context, studioID int, cutoff time.Time) (int, error)
}

type pagoRepository struct {
	conn *postgres.Connection
}

func NewPagoRepository(conn *postgres.Connection) PagoRepository {
	return &pagoRepository{
		conn: conn,
	}
}

func (r *pagoRepository) SumPagadoByPeriod(ctx context.Context, studioID int, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(p.monto), 0)").
		From(pagosTable).
		Where(squirrel.Eq{"p.studio_id": studioID}).
		Where(squirrel.Eq{"p.status": []string{domain.PagoStatusPaid, domain.PagoStatusCompleted}}).
		Where(squirrel.GtOrEq{"p.created_at": start}).
		Where(squirrel.LtOrEq{"p.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos do período: %w", err)
	}

	return total, nil
}

func (r *pagoRepository) CountPendientesVencidos(ctx context.Context, studioID int, cutoff time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(pagosTable).
		Where(squirrel.Eq{"p.studio_id": studioID, "p.status": domain.PagoStatusPending}).
		Where(squirrel.LtOrEq{"p.created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar pagamentos vencidos: %w", err)
	}

	return total, nil
}
