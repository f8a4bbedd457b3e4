package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const etapasTable = "etapas et"

type EtapaRepository interface {
	// CountEventosPorEtapa retorna, por etapa e em ordem de posição, a
	// contagem de eventos não arquivados. O join interno já omite etapas sem
	// eventos qualificados.
	CountEventosPorEtapa(ctx context.Context, studioID int) ([]*domain.EtapaConteo, error)
}

type etapaRepository struct {
	conn *postgres.Connection
}

func NewEtapaRepository(conn *postgres.Connection) EtapaRepository {
	return &etapaRepository{
		conn: conn,
	}
}

func (r *etapaRepository) CountEventosPorEtapa(ctx context.Context, studioID int) ([]*domain.EtapaConteo, error) {
	query, args, err := squirrel.
		Select("et.id, et.nombre, et.posicion, COUNT(e.id) AS cantidad").
		From(etapasTable).
		Join(fmt.Sprintf("eventos e ON e.etapa_id = et.id AND e.status <> '%s'", domain.EventoStatusArchived)).
		Where(squirrel.Eq{"et.studio_id": studioID}).
		GroupBy("et.id", "et.nombre", "et.posicion").
		OrderBy("et.posicion ASC").
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

	conteos := make([]*domain.EtapaConteo, 0)
	for rows.Next() {
		c := &domain.EtapaConteo{}
		if err := rows.Scan(&c.EtapaID, &c.Nombre, &c.Posicion, &c.Cantidad); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem de etapa: %w", err)
		}
		conteos = append(conteos, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return conteos, nil
}
