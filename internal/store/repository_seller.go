// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// sellerRepository is the PostgreSQL-backed implementation of
// [SellerRepository]. It operates on the "vendedores" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sellerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSellerRepository constructs a [SellerRepository] backed by the provided
// database connection and logger.
func NewSellerRepository(db *DB, logger *logger.Logger) SellerRepository {
	logger.Debug().Msg("creating seller repository")
	return &sellerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSeller persists a new seller record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSellerAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sellerRepository) CreateSeller(ctx context.Context, seller models.Seller) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSellerQuery(seller)
	if err != nil {
		log.Err(err).Str("func", "*sellerRepository.CreateSeller").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sellerRepository.CreateSeller").Msg("error inserting seller")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrSellerAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// GetSeller retrieves the seller row identified by uid. The optional
// descricao column may hold SQL NULL on rows written by earlier clients that
// omitted the field; NULL reads back as the empty string.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSellerNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *sellerRepository) GetSeller(ctx context.Context, uid string) (models.Seller, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSellerQuery(uid)
	if err != nil {
		log.Err(err).Str("func", "*sellerRepository.GetSeller").Msg("error building select query")
		return models.Seller{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seller models.Seller
	var descricao sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&seller.UID,
		&seller.CNPJ,
		&seller.NomeResponsavel,
		&seller.NomeEstabelecimento,
		&descricao,
		&seller.Coordenada,
	)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Seller{}, ErrSellerNotFound
	case err != nil:
		log.Err(err).Str("func", "*sellerRepository.GetSeller").Msg("error scanning seller row")
		return models.Seller{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	seller.Descricao = descricao.String
	return seller, nil
}

// UpdateSeller replaces all mutable fields of the seller row identified by
// seller.UID. A statement that matches no row is not an error.
func (r *sellerRepository) UpdateSeller(ctx context.Context, seller models.Seller) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSellerQuery(seller)
	if err != nil {
		log.Err(err).Str("func", "*sellerRepository.UpdateSeller").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sellerRepository.UpdateSeller").Msg("error updating seller")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
