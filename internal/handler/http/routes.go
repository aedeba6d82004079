package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.Instrument)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes acting on behalf of the token's principal
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.rateLimit)

		r.Route("/api/applications", func(r chi.Router) {
			r.Get("/", h.searchApplications)
			r.Post("/", h.createApplication)
			r.Get("/{id}", h.getApplication)
			r.Put("/{id}", h.updateApplication)
			r.Patch("/{id}", h.updateApplication)
			r.Delete("/{id}", h.deleteApplication)
		})

		r.Route("/api/folders", func(r chi.Router) {
			r.Get("/", h.searchFolders)
			r.Post("/", h.createFolder)
			r.Get("/dashboard", h.dashboard)
			r.Get("/{id}", h.getFolder)
			r.Put("/{id}", h.updateFolder)
			r.Patch("/{id}", h.updateFolder)
			r.Delete("/{id}", h.deleteFolder)
			r.Get("/{id}/applications", h.folderApplications)
		})

		r.Route("/api/selects", func(r chi.Router) {
			r.Get("/", h.catalog)
			r.Get("/{kind}", h.searchSelects)
			r.Post("/{kind}", h.createSelect)
			r.Get("/{kind}/{id}", h.getSelect)
			r.Put("/{kind}/{id}", h.updateSelect)
			r.Patch("/{kind}/{id}", h.updateSelect)
			r.Delete("/{kind}/{id}", h.deleteSelect)
		})

		r.Get("/api/search", h.search)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
