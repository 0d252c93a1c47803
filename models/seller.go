// SPDX-License-Identifier: Apache-2.0

package models

import "strings"

// Seller (vendedor) represents a marketplace participant. The UID primary
// identifier is supplied by the caller on creation and is immutable
// afterwards; update operations target exactly one row by UID.
type Seller struct {
	// UID is the caller-supplied primary identifier, 1–128 characters.
	UID string `json:"uid" validate:"required,min=1,max=128"`

	// CNPJ is the Brazilian company tax identifier, up to 14 characters.
	CNPJ string `json:"cnpj" validate:"required,max=14"`

	// NomeResponsavel is the responsible person's name.
	NomeResponsavel string `json:"nome_responsavel" validate:"required,max=255"`

	// NomeEstabelecimento is the establishment name.
	NomeEstabelecimento string `json:"nome_estabelecimento" validate:"required,max=255"`

	// Descricao is an optional free-text description.
	Descricao string `json:"descricao"`

	// Coordenada is the geographic location of the establishment, stored in
	// the database as a "point" column.
	Coordenada Point `json:"coordenada"`
}

// Normalize trims surrounding whitespace from every textual field. It is
// called before validation so length bounds apply to the trimmed values.
func (s *Seller) Normalize() {
	s.UID = strings.TrimSpace(s.UID)
	s.CNPJ = strings.TrimSpace(s.CNPJ)
	s.NomeResponsavel = strings.TrimSpace(s.NomeResponsavel)
	s.NomeEstabelecimento = strings.TrimSpace(s.NomeEstabelecimento)
	s.Descricao = strings.TrimSpace(s.Descricao)
}
