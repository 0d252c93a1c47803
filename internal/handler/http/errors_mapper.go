package http

import (
	"errors"
	"net/http"

	"github.com/feira-digital/mercado-api/internal/store"
	"github.com/feira-digital/mercado-api/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:      http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,

	store.ErrSellerAlreadyExists: http.StatusConflict,
	store.ErrSellerNotFound:      http.StatusNotFound,
	store.ErrProductNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps a service or store error onto an HTTP status code.
// Anything unrecognised is an internal fault: the handler answers 500 rather
// than letting a data-layer error escape the request.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
