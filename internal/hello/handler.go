package hello

import (
	"net/http"

	"github.com/Lelo88/hello-api-golang/internal/httpx"
)

// Handler HTTP para los endpoints estáticos de la API.
// Los handlers son funciones puras del request: sin estado compartido,
// seguros bajo despacho concurrente sin locking.
type Handler struct{}

// New crea un handler de los endpoints estáticos.
func New() *Handler {
	return &Handler{}
}

// Root responde el saludo raíz.
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, "Hello World", nil)
}

// API responde el saludo del namespace /api.
func (handler *Handler) API(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, http.StatusOK, "Hello API", nil)
}
