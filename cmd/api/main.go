package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Lelo88/hello-api-golang/internal/config"
	"github.com/Lelo88/hello-api-golang/internal/db"
	"github.com/Lelo88/hello-api-golang/internal/docs"
	"github.com/Lelo88/hello-api-golang/internal/health"
	"github.com/Lelo88/hello-api-golang/internal/hello"
	"github.com/Lelo88/hello-api-golang/internal/httpx"
	"github.com/Lelo88/hello-api-golang/internal/logging"
	"github.com/Lelo88/hello-api-golang/internal/server"
)

// appPool es lo que la aplicación necesita de la DB. Permite fakes en tests.
type appPool interface {
	Ping(ctx context.Context) error
	Close()
}

// appServer corre el ciclo de vida HTTP hasta que el contexto se cancele.
type appServer interface {
	Run(ctx context.Context) error
}

// appDeps agrupa las dependencias inyectables de run para poder testearlo.
type appDeps struct {
	loadConfig func() (config.Config, error)
	newPool    func(ctx context.Context, url string) (appPool, error)
	newServer  func(cfg config.Config, handler http.Handler, logger *logrus.Logger) appServer
}

// Indirecciones para tests; en producción apuntan a las implementaciones reales.
var (
	loadConfigFn = config.Load
	newPoolFn    = func(ctx context.Context, url string) (appPool, error) {
		return db.NewPool(ctx, url)
	}
	newServerFn = func(cfg config.Config, handler http.Handler, logger *logrus.Logger) appServer {
		return server.New(cfg.Port, handler, cfg.ShutdownTimeout, logger)
	}
	fatalf = logrus.StandardLogger().Fatal
)

func main() {
	// Una señal de terminación cancela el contexto raíz; el server drena y sale.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, appDeps{
		loadConfig: loadConfigFn,
		newPool:    newPoolFn,
		newServer:  newServerFn,
	}); err != nil {
		fatalf(err)
	}
}

// run arma la aplicación y sirve hasta que el contexto se cancele.
// Separado de main para poder testear los caminos de error.
func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	logger.WithFields(logrus.Fields{
		"port":             cfg.Port,
		"log_level":        cfg.LogLevel.String(),
		"shutdown_timeout": cfg.ShutdownTimeout.String(),
	}).Info("config loaded")

	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	router := buildRouter(pool, logger)

	return deps.newServer(cfg, router, logger).Run(ctx)
}

// buildRouter arma el router chi con middlewares y rutas.
func buildRouter(pool health.Pinger, logger *logrus.Logger) chi.Router {
	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpx.EnsureRequestID)
	router.Use(httpx.RequestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router, con el mismo sobre JSON.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "resource not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	hello.RegisterRoutes(router, hello.New())

	healthHandler := health.New(pool)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(router)

	return router
}
