package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const citasTable = "citas ci"

type CitaRepository interface {
	// ListProximas retorna as citas agendadas/confirmadas entre as datas
	// informadas, ordenadas por data e hora, com nomes resolvidos por join.
	ListProximas(ctx context.Context, studioID int, from, to time.Time, limit uint64) ([]*domain.CitaRow, error)

	// CountProximas conta as citas agendadas/confirmadas entre as datas.
	CountProximas(ctx context.Context, studioID int, from, to time.Time) (int, error)

	// CountByPeriod conta as citas do período e quantas foram completadas,
	// para o cálculo de efetividade.
	CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CitaConteo, error)
}

type citaRepository struct {
	conn *postgres.Connection
}

func NewCitaRepository(conn *postgres.Connection) CitaRepository {
	return &citaRepository{
		conn: conn,
	}
}

func citaProximaStatuses() []string {
	return []string{domain.CitaStatusScheduled, domain.CitaStatusConfirmed}
}

func (r *citaRepository) ListProximas(ctx context.Context, studioID int, from, to time.Time, limit uint64) ([]*domain.CitaRow, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.asunto, ci.fecha, ci.hora, ci.tipo, ci.modalidad, ci.status, e.nombre, c.nombre").
		From(citasTable).
		Join("eventos e ON e.id = ci.evento_id").
		Join("clientes c ON c.id = e.cliente_id").
		Where(squirrel.Eq{"ci.studio_id": studioID}).
		Where(squirrel.Eq{"ci.status": citaProximaStatuses()}).
		Where(squirrel.GtOrEq{"ci.fecha": from}).
		Where(squirrel.LtOrEq{"ci.fecha": to}).
		OrderBy("ci.fecha ASC", "ci.hora ASC").
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

	citas := make([]*domain.CitaRow, 0)
	for rows.Next() {
		cita := &domain.CitaRow{}
		err := rows.Scan(
			&cita.ID,
			&cita.Asunto,
			&cita.Fecha,
			&cita.Hora,
			&cita.Tipo,
			&cita.Modalidad,
			&cita.Status,
			&cita.EventoNombre,
			&cita.ClienteNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cita: %w", err)
		}
		citas = append(citas, cita)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return citas, nil
}

func (r *citaRepository) CountProximas(ctx context.Context, studioID int, from, to time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(citasTable).
		Where(squirrel.Eq{"ci.studio_id": studioID}).
		Where(squirrel.Eq{"ci.status": citaProximaStatuses()}).
		Where(squirrel.GtOrEq{"ci.fecha": from}).
		Where(squirrel.LtOrEq{"ci.fecha": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar citas próximas: %w", err)
	}

	return total, nil
}

func (r *citaRepository) CountByPeriod(ctx context.Context, studioID int, start, end time.Time) (*domain.CitaConteo, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			fmt.Sprintf("COUNT(*) FILTER (WHERE ci.status = '%s')", domain.CitaStatusCompleted),
		).
		From(citasTable).
		Where(squirrel.Eq{"ci.studio_id": studioID}).
		Where(squirrel.GtOrEq{"ci.fecha": start}).
		Where(squirrel.LtOrEq{"ci.fecha": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	conteo := &domain.CitaConteo{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&conteo.Total, &conteo.Completadas); err != nil {
		return nil, fmt.Errorf("erro ao contar citas do período: %w", err)
	}

	return conteo, nil
}
