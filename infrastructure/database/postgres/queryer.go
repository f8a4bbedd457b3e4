package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o recorte de leitura usado pelos repositórios. O dashboard é um
// pipeline somente de leitura: múltiplos leitores concorrentes, nenhuma
// transação necessária.
type Queryer interface {
	QueryContext(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
