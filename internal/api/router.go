package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/backoffice/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Post("/images/validate", h.ValidateImage)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Route("/entities/{entity}", func(r chi.Router) {
				r.Get("/rows", h.List)
				r.Get("/export", h.Export)
				r.Get("/draft", h.Draft)
				r.Get("/next-code", h.NextCode)
				r.Post("/records", h.Create)
				r.Get("/records/{key}/draft", h.EditDraft)
				r.Put("/records/{key}", h.Update)
				r.Delete("/records/{key}", h.Delete)
			})

			r.Post("/images", h.UploadImage)

			r.Get("/calendar/care", h.CareCalendar)
			r.Get("/calendar/companies", h.CompanyCalendar)

			r.Get("/companies/{id}", h.CompanyDetail)
			r.Get("/companies/{id}/related/{entity}/{key}", h.RelatedRecord)

			r.Get("/journal", h.Journal)
		})
	})

	return router
}
