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

const clientesTable = "clientes c"

// lateral que resolve o tipo e a etapa do evento mais recente do cliente
const ultimoEventoLateral = `LEFT JOIN LATERAL (
	SELECT t.nombre AS tipo, et.nombre AS etapa
	FROM eventos e
	JOIN evento_tipos t ON t.id = e.evento_tipo_id
	LEFT JOIN etapas et ON et.id = e.etapa_id
	WHERE e.cliente_id = c.id
	ORDER BY e.created_at DESC
	LIMIT 1
) ev ON true`

type ClienteRepository interface {
	// ListProspectosByPeriod retorna os clientes prospecto/new criados no
	// período, dos mais recentes para os mais antigos, enriquecidos com canal
	// e com o evento mais recente.
	ListProspectosByPeriod(ctx context.Context, studioID int, start, end time.Time, limit uint64) ([]*domain.ProspectoRow, error)

	// CountProspectosByPeriod conta os clientes prospecto/new criados no período.
	CountProspectosByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error)

	// TopCanalByPeriod retorna o canal com mais clientes novos no período, ou
	// nil quando nenhum cliente novo tem canal atribuído.
	TopCanalByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CanalConteo, error)
}

type clienteRepository struct {
	conn *postgres.Connection
}

func NewClienteRepository(conn *postgres.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func prospectoStatuses() []string {
	return []string{domain.ClienteStatusProspect, domain.ClienteStatusNew}
}

func (r *clienteRepository) ListProspectosByPeriod(ctx context.Context, studioID int, start, end time.Time, limit uint64) ([]*domain.ProspectoRow, error) {
	query, args, err := squirrel.
		Select("c.id, c.nombre, c.email, c.telefono, ca.nombre, c.created_at, ev.tipo, ev.etapa").
		From(clientesTable).
		LeftJoin("canales ca ON ca.id = c.canal_id").
		JoinClause(ultimoEventoLateral).
		Where(squirrel.Eq{"c.studio_id": studioID}).
		Where(squirrel.Eq{"c.status": prospectoStatuses()}).
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.LtOrEq{"c.created_at": end}).
		OrderBy("c.created_at DESC").
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

	prospectos := make([]*domain.ProspectoRow, 0)
	for rows.Next() {
		p := &domain.ProspectoRow{}
		err := rows.Scan(
			&p.ID,
			&p.Nombre,
			&p.Email,
			&p.Telefono,
			&p.Canal,
			&p.CreatedAt,
			&p.TipoEvento,
			&p.EtapaEvento,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear prospecto: %w", err)
		}
		prospectos = append(prospectos, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return prospectos, nil
}

func (r *clienteRepository) CountProspectosByPeriod(ctx context.Context, studioID int, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(clientesTable).
		Where(squirrel.Eq{"c.studio_id": studioID}).
		Where(squirrel.Eq{"c.status": prospectoStatuses()}).
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.LtOrEq{"c.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar prospectos do período: %w", err)
	}

	return total, nil
}

func (r *clienteRepository) TopCanalByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CanalConteo, error) {
	query, args, err := squirrel.
		Select("ca.nombre, COUNT(c.id) AS cantidad").
		From(clientesTable).
		Join("canales ca ON ca.id = c.canal_id").
		Where(squirrel.Eq{"c.studio_id": studioID}).
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.LtOrEq{"c.created_at": end}).
		GroupBy("ca.nombre").
		OrderBy("cantidad DESC", "ca.nombre ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conteo := &domain.CanalConteo{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&conteo.Nombre, &conteo.Cantidad)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar canal principal: %w", err)
	}

	return conteo, nil
}
