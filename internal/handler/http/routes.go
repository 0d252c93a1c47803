package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(withCORS)
	router.Use(withGZip)

	// every route sits behind the shared ApiKey check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/vendedor/{uid}", h.getSeller)
		r.Post("/vendedor/inserir", h.insertSeller)
		r.Put("/vendedor/alterar", h.updateSeller)
		r.Get("/vendedor/produtos/{uid}", h.getSellerProducts)

		r.Post("/produto/inserir", h.insertProduct)
		r.Get("/produto/{id}", h.getProduct)
		r.Put("/produto/alterar", h.updateProduct)
		r.Delete("/produto/excluir/{id}", h.deleteProduct)
	})

	return router
}
