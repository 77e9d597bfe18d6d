package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool crea un pool de conexiones a PostgreSQL a partir de DATABASE_URL.
// El pool es perezoso: valida la URL al construirse pero no abre conexiones,
// así el proceso arranca aunque la DB todavía no esté disponible.
// La conectividad real se verifica por request en /ready.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, databaseURL)
}
