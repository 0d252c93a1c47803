package store

import (
	"context"

	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/logger"
)

// Storages aggregates every repository over the single shared connection
// pool. It is created once at process start and injected into the service
// layer.
type Storages struct {
	SellerRepository  SellerRepository
	ProductRepository ProductRepository
}

// NewStorages opens the database connection pool and constructs all
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	return &Storages{
		SellerRepository:  NewSellerRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
	}, nil
}
