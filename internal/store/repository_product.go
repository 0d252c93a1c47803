// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. It operates on the "produtos" table.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct inserts a new product row and returns the id generated by
// the database (RETURNING clause).
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(product)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error building insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return id, nil
}

// scanProduct copies one result row into a Product. The optional descricao
// and imagem_url columns may hold SQL NULL on rows written by earlier clients
// that omitted the fields; NULL reads back as the empty string.
func scanProduct(row interface{ Scan(dest ...any) error }) (models.Product, error) {
	var product models.Product
	var descricao, imagemURL sql.NullString

	err := row.Scan(
		&product.ID,
		&product.VendedorUID,
		&product.Nome,
		&product.Preco,
		&descricao,
		&imagemURL,
	)
	if err != nil {
		return models.Product{}, err
	}

	product.Descricao = descricao.String
	product.ImagemURL = imagemURL.String
	return product, nil
}

// GetProduct retrieves the product row identified by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProductNotFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error building select query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrProductNotFound
	case err != nil:
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error scanning product row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// GetProductsBySeller retrieves every product whose vendedor_uid matches the
// given seller uid. A seller with no products yields an empty, non-nil slice.
func (r *productRepository) GetProductsBySeller(ctx context.Context, vendedorUID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsBySellerQuery(vendedorUID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductsBySeller").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductsBySeller").Msg("error querying products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.GetProductsBySeller").Msg("error scanning product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductsBySeller").Msg("error iterating product rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// UpdateProduct replaces all mutable fields of the product row identified by
// product.ID. A statement that matches no row is not an error.
func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(product)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error updating product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteProduct removes the product row identified by id. Deleting an absent
// id affects zero rows and is still a success (idempotent delete).
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
