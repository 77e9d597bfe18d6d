package httpx

import (
	"encoding/json"
	"net/http"
)

// Response es el sobre estándar que devuelve la API.
// El formato es fijo: status + message + data, siempre presentes.
// Mantener un formato consistente hace que los clientes (frontend/tests) sean más simples.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(resp); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"status":"error","message":"internal server error","data":{}}`, http.StatusInternalServerError)
	}
}

// OK devuelve una respuesta exitosa. Si data es nil se serializa como objeto vacío.
func OK(w http.ResponseWriter, status int, message string, data any) {
	if data == nil {
		data = struct{}{}
	}
	JSON(w, status, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail devuelve un error en el mismo sobre que las respuestas exitosas.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{
		Status:  "error",
		Message: message,
		Data:    struct{}{},
	})
}
