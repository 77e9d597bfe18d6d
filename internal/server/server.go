package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Server envuelve http.Server con el ciclo de vida completo:
// bind, serve, drain ante cancelación del contexto y cierre forzado al vencer el timeout.
type Server struct {
	http            *http.Server
	shutdownTimeout time.Duration
	logger          *logrus.Logger

	started   chan struct{}
	boundAddr net.Addr
}

// New construye el server HTTP para escuchar en 0.0.0.0:port.
// ReadHeaderTimeout corto para cortar clientes que no mandan headers;
// sin WriteTimeout porque el drain es quien acota las respuestas largas.
func New(port int, handler http.Handler, shutdownTimeout time.Duration, logger *logrus.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		started:         make(chan struct{}),
	}
}

// Started se cierra cuando el listener ya está aceptando conexiones.
func (server *Server) Started() <-chan struct{} {
	return server.started
}

// Addr devuelve la dirección real del listener. Solo es válida después de Started.
func (server *Server) Addr() net.Addr {
	return server.boundAddr
}

// Run liga el listener y sirve hasta que el contexto se cancele.
// La cancelación dispara el drain: se dejan de aceptar conexiones nuevas y se
// espera a las que están en vuelo hasta shutdownTimeout; vencido el plazo se
// cierran a la fuerza. Un apagado por señal devuelve nil, no es un error.
func (server *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", server.http.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", server.http.Addr, err)
	}

	server.boundAddr = listener.Addr()
	close(server.started)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.http.Serve(listener)
	}()

	server.logger.WithField("addr", server.boundAddr.String()).Info("listening")

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	server.logger.WithField("timeout", server.shutdownTimeout.String()).Info("shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.shutdownTimeout)
	defer cancel()

	if err := server.http.Shutdown(shutdownCtx); err != nil {
		// Venció el plazo de drain: cortamos lo que quedó abierto.
		_ = server.http.Close()
		server.logger.Warn("drain timeout expired, remaining connections closed")
	}

	server.logger.Info("server stopped")
	return nil
}
