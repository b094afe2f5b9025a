package contract

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RegisterRoutes registers contract routes. The generation endpoint streams
// for as long as the provider takes, so it skips the request timeout the
// other routes run under; generateLimiter throttles it per client instead.
func RegisterRoutes(r chi.Router, h *Handler, generateLimiter func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		r.Route("/api", func(r chi.Router) {
			r.Get("/contract-types", h.GetContractTypes)
			r.Post("/generate-contract-full", h.GetFullContract)
			r.Post("/download-contract", h.DownloadContract)

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", h.ListContracts)
				r.Get("/stats", h.ContractStats)
				r.Delete("/{id}", h.DeleteContract)
			})
		})
	})

	r.With(generateLimiter).Post("/api/generate-contract", h.GenerateContract)
}
