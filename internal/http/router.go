package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/fenestra/internal/http/auth"
	"github.com/MrJamesThe3rd/fenestra/internal/http/catalog"
	"github.com/MrJamesThe3rd/fenestra/internal/http/export"
	"github.com/MrJamesThe3rd/fenestra/internal/http/importsheet"
	"github.com/MrJamesThe3rd/fenestra/internal/http/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/http/quotation"
)

type Options struct {
	// AuthSecret enables bearer-token checks on the API when set.
	AuthSecret     string
	AllowedOrigins []string
}

func New(
	opts Options,
	quotationsV1 *quotation.Handler,
	catalogV1 *catalog.Handler,
	pricebookV1 *pricebook.Handler,
	importV1 *importsheet.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Total-Count"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.AuthSecret != "" {
			r.Use(auth.Middleware([]byte(opts.AuthSecret)))
		}

		r.Route("/quotations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			quotationsV1.Routes(r)
		})

		r.Route("/catalog", catalogV1.Routes)

		r.Route("/pricebook", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			pricebookV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
