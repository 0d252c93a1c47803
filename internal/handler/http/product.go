// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// productID parses the {id} path parameter of the request.
func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidIdentifier
	}

	return id, nil
}

// insertProduct answers POST /produto/inserir. The id is database-generated
// and reported back in the acknowledgment.
func (h *Handler) insertProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Str("func", "*Handler.insertProduct").Msg("invalid JSON was passed")
		writeJSON(w, r, http.StatusBadRequest, models.Error(ErrInvalidJSONBody.Error()))
		return
	}

	id, err := h.services.ProductService.CreateProduct(r.Context(), &product)
	if err != nil {
		log.Err(err).Str("func", "*Handler.insertProduct").Msg("error inserting product")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.SuccessWithID("Produto adicionado", id))
}

// getProduct answers GET /produto/{id} with the matching product row, or 404
// when no row matches the id.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := productID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProduct").Msg("invalid product id")
		writeJSON(w, r, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error fetching product")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, product)
}

// updateProduct answers PUT /produto/alterar, replacing every mutable field
// of the row identified by the body's id. Status 201 is kept for
// compatibility with the contract existing clients depend on.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("invalid JSON was passed")
		writeJSON(w, r, http.StatusBadRequest, models.Error(ErrInvalidJSONBody.Error()))
		return
	}

	if err := h.services.ProductService.UpdateProduct(r.Context(), &product); err != nil {
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("error updating product")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.Success("Produto atualizado"))
}

// deleteProduct answers DELETE /produto/excluir/{id}. The delete is
// idempotent: removing an id that never existed still acknowledges success.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := productID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteProduct").Msg("invalid product id")
		writeJSON(w, r, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	if err := h.services.ProductService.DeleteProduct(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting product")
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.Success("Produto excluido"))
}
