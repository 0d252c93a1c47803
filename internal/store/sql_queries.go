// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/feira-digital/mercado-api/models"
)

// psql is the shared statement builder: every statement uses PostgreSQL $n
// placeholders, and parameters are always passed positionally, never
// interpolated into the SQL text. The coordenada value travels as a single
// textual point literal produced by [models.Point.Value].
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	sellerColumns  = []string{"uid", "cnpj", "nome_responsavel", "nome_estabelecimento", "descricao", "coordenada"}
	productColumns = []string{"id", "vendedor_uid", "nome", "preco", "descricao", "imagem_url"}
)

func buildInsertSellerQuery(seller models.Seller) (string, []any, error) {
	return psql.
		Insert("vendedores").
		Columns(sellerColumns...).
		Values(seller.UID, seller.CNPJ, seller.NomeResponsavel, seller.NomeEstabelecimento, seller.Descricao, seller.Coordenada).
		ToSql()
}

func buildSelectSellerQuery(uid string) (string, []any, error) {
	return psql.
		Select(sellerColumns...).
		From("vendedores").
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildUpdateSellerQuery(seller models.Seller) (string, []any, error) {
	return psql.
		Update("vendedores").
		Set("cnpj", seller.CNPJ).
		Set("nome_responsavel", seller.NomeResponsavel).
		Set("nome_estabelecimento", seller.NomeEstabelecimento).
		Set("descricao", seller.Descricao).
		Set("coordenada", seller.Coordenada).
		Where(sq.Eq{"uid": seller.UID}).
		ToSql()
}

func buildInsertProductQuery(product models.Product) (string, []any, error) {
	return psql.
		Insert("produtos").
		Columns("vendedor_uid", "nome", "preco", "descricao", "imagem_url").
		Values(product.VendedorUID, product.Nome, product.Preco, product.Descricao, product.ImagemURL).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectProductQuery(id int64) (string, []any, error) {
	return psql.
		Select(productColumns...).
		From("produtos").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectProductsBySellerQuery(vendedorUID string) (string, []any, error) {
	return psql.
		Select(productColumns...).
		From("produtos").
		Where(sq.Eq{"vendedor_uid": vendedorUID}).
		OrderBy("id").
		ToSql()
}

func buildUpdateProductQuery(product models.Product) (string, []any, error) {
	return psql.
		Update("produtos").
		Set("nome", product.Nome).
		Set("preco", product.Preco).
		Set("descricao", product.Descricao).
		Set("imagem_url", product.ImagemURL).
		Where(sq.Eq{"id": product.ID}).
		ToSql()
}

func buildDeleteProductQuery(id int64) (string, []any, error) {
	return psql.
		Delete("produtos").
		Where(sq.Eq{"id": id}).
		ToSql()
}
