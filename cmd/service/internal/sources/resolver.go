package sources

import (
	"context"
	"strings"
)

// SourceConfig identifies one partitioned log table registered in the
// catalog. LogType is the raw catalog value; the handler layer parses and
// validates it before any query is built.
type SourceConfig struct {
	LogType  string `json:"logType"`
	Database string `json:"database"`
	Table    string `json:"table"`
}

type Resolver interface {
	ResolveByRef(ctx context.Context, sourceRef string) (SourceConfig, error)
}

type Store interface {
	GetSource(ctx context.Context, sourceRef string) (SourceConfig, error)
}

type resolver struct {
	store Store
}

func NewResolver(store Store) Resolver {
	return &resolver{store: store}
}

func (r *resolver) ResolveByRef(ctx context.Context, sourceRef string) (SourceConfig, error) {
	if strings.TrimSpace(sourceRef) == "" {
		return SourceConfig{}, ErrInvalidInput
	}
	if r.store == nil {
		return SourceConfig{}, ErrNotConfigured
	}
	return r.store.GetSource(ctx, sourceRef)
}
