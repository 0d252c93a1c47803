package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/mock"
	"github.com/feira-digital/mercado-api/internal/service"
	"github.com/feira-digital/mercado-api/internal/store"
	"github.com/feira-digital/mercado-api/internal/validators"
	"github.com/feira-digital/mercado-api/models"
)

// ---- Helpers ----

func newSellerTestHandler(t *testing.T) (*Handler, *mock.MockSellerService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sellerSvc := mock.NewMockSellerService(ctrl)

	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{SellerService: sellerSvc},
	}

	return h, sellerSvc
}

// newChiRequest builds a request whose chi URL parameters are populated, so
// handlers can be exercised without the full router.
func newChiRequest(method, target, body string, params map[string]string) *http.Request {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req = injectNopLogger(req)

	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// ---- GET /vendedor/{uid} ----

func TestGetSeller(t *testing.T) {
	seller := models.Seller{
		UID:                 "vendedor-1",
		CNPJ:                "12345678000195",
		NomeResponsavel:     "Maria Souza",
		NomeEstabelecimento: "Barraca da Maria",
	}

	t.Run("found → 200 with seller body", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().GetSeller(gomock.Any(), "vendedor-1").Return(seller, nil)

		req := newChiRequest(http.MethodGet, "/vendedor/vendedor-1", "", map[string]string{"uid": "vendedor-1"})
		rr := httptest.NewRecorder()
		h.getSeller(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Seller
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, seller, got)
	})

	t.Run("unknown uid → 404", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().GetSeller(gomock.Any(), "ghost").Return(models.Seller{}, store.ErrSellerNotFound)

		req := newChiRequest(http.MethodGet, "/vendedor/ghost", "", map[string]string{"uid": "ghost"})
		rr := httptest.NewRecorder()
		h.getSeller(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, models.StatusError, resp.Status)
	})

	t.Run("database fault → 500 with generic message", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().GetSeller(gomock.Any(), "vendedor-1").Return(models.Seller{}, store.ErrExecutingQuery)

		req := newChiRequest(http.MethodGet, "/vendedor/vendedor-1", "", map[string]string{"uid": "vendedor-1"})
		rr := httptest.NewRecorder()
		h.getSeller(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, "internal server error", resp.Message)
	})
}

// ---- POST /vendedor/inserir ----

func TestInsertSeller(t *testing.T) {
	body := `{
		"uid": "vendedor-1",
		"cnpj": "12345678000195",
		"nome_responsavel": "Maria Souza",
		"nome_estabelecimento": "Barraca da Maria",
		"coordenada": {"x": -23.5, "y": -46.6}
	}`

	t.Run("valid payload → 201 Vendedor adicionado", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().
			CreateSeller(gomock.Any(), gomock.AssignableToTypeOf(&models.Seller{})).
			DoAndReturn(func(_ context.Context, s *models.Seller) error {
				assert.Equal(t, "vendedor-1", s.UID)
				assert.Equal(t, -23.5, s.Coordenada.X)
				return nil
			})

		req := newChiRequest(http.MethodPost, "/vendedor/inserir", body, nil)
		rr := httptest.NewRecorder()
		h.insertSeller(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, models.StatusSuccess, resp.Status)
		assert.Equal(t, "Vendedor adicionado", resp.Message)
	})

	t.Run("malformed JSON → 400, service never called", func(t *testing.T) {
		h, _ := newSellerTestHandler(t)

		req := newChiRequest(http.MethodPost, "/vendedor/inserir", "{not json", nil)
		rr := httptest.NewRecorder()
		h.insertSeller(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, ErrInvalidJSONBody.Error(), resp.Message)
	})

	t.Run("validation failure → 400 with field detail", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().
			CreateSeller(gomock.Any(), gomock.Any()).
			Return(&validators.ValidationError{Fields: []validators.FieldError{
				{Field: "cnpj", Message: "is required"},
			}})

		req := newChiRequest(http.MethodPost, "/vendedor/inserir", `{"uid":"v1"}`, nil)
		rr := httptest.NewRecorder()
		h.insertSeller(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Contains(t, resp.Message, "cnpj")
	})

	t.Run("duplicate uid → 409", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().CreateSeller(gomock.Any(), gomock.Any()).Return(store.ErrSellerAlreadyExists)

		req := newChiRequest(http.MethodPost, "/vendedor/inserir", body, nil)
		rr := httptest.NewRecorder()
		h.insertSeller(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})
}

// ---- PUT /vendedor/alterar ----

func TestUpdateSeller(t *testing.T) {
	body := `{
		"uid": "vendedor-1",
		"cnpj": "12345678000195",
		"nome_responsavel": "Maria Souza",
		"nome_estabelecimento": "Barraca Nova"
	}`

	t.Run("valid payload → 201 Vendedor atualizado", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().UpdateSeller(gomock.Any(), gomock.Any()).Return(nil)

		req := newChiRequest(http.MethodPut, "/vendedor/alterar", body, nil)
		rr := httptest.NewRecorder()
		h.updateSeller(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeResponse(t, rr)
		assert.Equal(t, "Vendedor atualizado", resp.Message)
	})

	t.Run("malformed JSON → 400", func(t *testing.T) {
		h, _ := newSellerTestHandler(t)

		req := newChiRequest(http.MethodPut, "/vendedor/alterar", "]", nil)
		rr := httptest.NewRecorder()
		h.updateSeller(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// ---- GET /vendedor/produtos/{uid} ----

func TestGetSellerProducts(t *testing.T) {
	t.Run("seller with products → 200 array", func(t *testing.T) {
		products := []models.Product{
			{ID: 1, VendedorUID: "vendedor-1", Nome: "Tomate", Preco: 4.5},
			{ID: 2, VendedorUID: "vendedor-1", Nome: "Alface", Preco: 2},
		}

		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().GetSellerProducts(gomock.Any(), "vendedor-1").Return(products, nil)

		req := newChiRequest(http.MethodGet, "/vendedor/produtos/vendedor-1", "", map[string]string{"uid": "vendedor-1"})
		rr := httptest.NewRecorder()
		h.getSellerProducts(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got []models.Product
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, products, got)
	})

	t.Run("seller without products → 200 empty array, not null", func(t *testing.T) {
		h, sellerSvc := newSellerTestHandler(t)
		sellerSvc.EXPECT().GetSellerProducts(gomock.Any(), "vendedor-2").Return([]models.Product{}, nil)

		req := newChiRequest(http.MethodGet, "/vendedor/produtos/vendedor-2", "", map[string]string{"uid": "vendedor-2"})
		rr := httptest.NewRecorder()
		h.getSellerProducts(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})
}
