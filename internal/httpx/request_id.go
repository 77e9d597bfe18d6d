package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// EnsureRequestID garantiza que todo request tenga un X-Request-Id y lo
// propaga en el header de la respuesta. Reutiliza el id que chi dejó en el
// contexto o el que mandó el cliente; si no hay ninguno, genera un UUID.
func EnsureRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := RequestIDFrom(r)
		if id == "" {
			id = uuid.NewString()
		}
		r.Header.Set(requestIDHeader, id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// RequestIDFrom lee el request id para incluirlo en logs.
// Prioriza el id que chi guardó en el contexto; cae al header si no está.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if id := middleware.GetReqID(request.Context()); id != "" {
		return id
	}
	return request.Header.Get(requestIDHeader)
}
