package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/internal/domain"
)

const studiosTable = "studios s"

type StudioRepository interface {
	// GetByID retorna o estúdio, ou nil quando não existe.
	GetByID(ctx context.Context, id int) (*domain.Studio, error)

	// ListActivos retorna os estúdios ativos (usado pelo aquecimento de cache).
	ListActivos(ctx context.Context) ([]*domain.Studio, error)
}

type studioRepository struct {
	conn *postgres.Connection
}

func NewStudioRepository(conn *postgres.Connection) StudioRepository {
	return &studioRepository{
		conn: conn,
	}
}

func (r *studioRepository) GetByID(ctx context.Context, id int) (*domain.Studio, error) {
	query, args, err := squirrel.
		Select("s.id, s.nombre, s.slug, s.activo, s.created_at").
		From(studiosTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	studio := &domain.Studio{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&studio.ID,
		&studio.Nombre,
		&studio.Slug,
		&studio.Activo,
		&studio.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar estúdio: %w", err)
	}

	return studio, nil
}

func (r *studioRepository) ListActivos(ctx context.Context) ([]*domain.Studio, error) {
	query, args, err := squirrel.
		Select("s.id, s.nombre, s.slug, s.activo, s.created_at").
		From(studiosTable).
		Where(squirrel.Eq{"s.activo": true}).
		OrderBy("s.id ASC").
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

	studios := make([]*domain.Studio, 0)
	for rows.Next() {
		studio := &domain.Studio{}
		err := rows.Scan(
			&studio.ID,
			&studio.Nombre,
			&studio.Slug,
			&studio.Activo,
			&studio.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estúdio: %w", err)
		}
		studios = append(studios, studio)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return studios, nil
}
