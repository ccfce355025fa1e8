package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/profit-simulator/internal/domain"
)

// Querier lo mínimo que usan las consultas; lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// lookupFailed envuelve un error de infraestructura para que el caller lo distinga
// de "no encontrado" con errors.Is(err, domain.ErrLookupUnavailable).
func lookupFailed(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w: %s (%s)", op, domain.ErrLookupUnavailable, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrLookupUnavailable, err)
}
