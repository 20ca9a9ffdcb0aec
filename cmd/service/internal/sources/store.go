package sources

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresStore backs the source catalog with a log_sources table keyed by
// the sourceRef callers send instead of inline coordinates.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewResolverFromEnv wires the catalog when DATABASE_URL is set; otherwise
// sourceRef lookups stay disabled and callers must send inline sources.
func NewResolverFromEnv(log zerolog.Logger) (Resolver, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return NewResolver(nil), ErrNotConfigured
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Warn().Err(err).Msg("sourceRef lookup disabled")
		return NewResolver(nil), ErrNotConfigured
	}
	return NewResolver(&PostgresStore{pool: pool}), nil
}

func (s *PostgresStore) GetSource(ctx context.Context, sourceRef string) (SourceConfig, error) {
	row := s.pool.QueryRow(ctx, `SELECT log_type, database_name, table_name FROM log_sources WHERE id=$1`, sourceRef)
	var cfg SourceConfig
	if err := row.Scan(&cfg.LogType, &cfg.Database, &cfg.Table); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SourceConfig{}, ErrNotFound
		}
		return SourceConfig{}, err
	}
	return cfg, nil
}
