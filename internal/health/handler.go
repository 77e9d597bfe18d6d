package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/hello-api-golang/internal/httpx"
)

// Pinger es lo mínimo que health necesita de la DB.
// Permite testear readiness con fakes sin una base real.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	db Pinger
}

// New crea un handler de health.
func New(db Pinger) *Handler {
	return &Handler{db: db}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos; debe responder rápido y siempre 200.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Ready verifica que la DB responda antes de declarar el proceso listo.
// Timeout corto: un probe de readiness no puede quedarse colgado.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.db == nil {
		httpx.Fail(w, http.StatusServiceUnavailable, "database pool not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		httpx.Fail(w, http.StatusServiceUnavailable, "database is not reachable")
		return
	}

	httpx.OK(w, http.StatusOK, "ready", nil)
}
