// SPDX-License-Identifier: Apache-2.0

package models

import "strings"

// Product (produto) represents an item offered by a Seller. The ID primary
// identifier is generated by the database on insert; update and delete
// operations target exactly one row by ID.
//
// VendedorUID references the owning Seller's UID. Seller lifecycle is
// independent: deleting data at this layer never cascades.
type Product struct {
	// ID is the database-generated primary identifier. Zero on insert.
	ID int64 `json:"id"`

	// VendedorUID is the UID of the Seller offering this product.
	VendedorUID string `json:"vendedor_uid" validate:"required,max=128"`

	// Nome is the product name.
	Nome string `json:"nome" validate:"required,max=255"`

	// Preco is the product price.
	Preco float64 `json:"preco" validate:"gte=0"`

	// Descricao is an optional free-text description.
	Descricao string `json:"descricao"`

	// ImagemURL is an optional URL of the product image.
	ImagemURL string `json:"imagem_url"`
}

// Normalize trims surrounding whitespace from every textual field. It is
// called before validation so length bounds apply to the trimmed values.
func (p *Product) Normalize() {
	p.VendedorUID = strings.TrimSpace(p.VendedorUID)
	p.Nome = strings.TrimSpace(p.Nome)
	p.Descricao = strings.TrimSpace(p.Descricao)
	p.ImagemURL = strings.TrimSpace(p.ImagemURL)
}
