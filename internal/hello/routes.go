package hello

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra los endpoints estáticos en el router.
// Mantener esto separado hace que main.go no crezca sin control.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Get("/", handler.Root)
	route.Get("/api", handler.API)
}
