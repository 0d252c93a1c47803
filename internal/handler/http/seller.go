// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// getSeller answers GET /vendedor/{uid} with the matching seller row, or 404
// when no row matches the uid.
func (h *Handler) getSeller(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	seller, err := h.services.SellerService.GetSeller(r.Context(), uid)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("uid", uid).Msg("error fetching seller")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, seller)
}

// insertSeller answers POST /vendedor/inserir. The uid travels in the body
// and becomes the row's immutable primary identifier.
func (h *Handler) insertSeller(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var seller models.Seller
	if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
		log.Err(err).Str("func", "*Handler.insertSeller").Msg("invalid JSON was passed")
		writeJSON(w, r, http.StatusBadRequest, models.Error(ErrInvalidJSONBody.Error()))
		return
	}

	if err := h.services.SellerService.CreateSeller(r.Context(), &seller); err != nil {
		log.Err(err).Str("func", "*Handler.insertSeller").Msg("error inserting seller")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.Success("Vendedor adicionado"))
}

// updateSeller answers PUT /vendedor/alterar, replacing every mutable field
// of the row identified by the body's uid. The 201 status mirrors the
// contract existing clients depend on, although the operation is an update.
func (h *Handler) updateSeller(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var seller models.Seller
	if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
		log.Err(err).Str("func", "*Handler.updateSeller").Msg("invalid JSON was passed")
		writeJSON(w, r, http.StatusBadRequest, models.Error(ErrInvalidJSONBody.Error()))
		return
	}

	if err := h.services.SellerService.UpdateSeller(r.Context(), &seller); err != nil {
		log.Err(err).Str("func", "*Handler.updateSeller").Msg("error updating seller")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.Success("Vendedor atualizado"))
}

// getSellerProducts answers GET /vendedor/produtos/{uid} with every product
// of the seller; a seller with no products yields an empty array, not an
// error.
func (h *Handler) getSellerProducts(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	products, err := h.services.SellerService.GetSellerProducts(r.Context(), uid)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("uid", uid).Msg("error fetching seller products")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, products)
}
