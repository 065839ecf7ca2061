// Package api LogMacster REST API
//
// @title           LogMacster REST API
// @version         1.0.0
// @description     HTTP grid API for editing an ADIF amateur radio log.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/swaggo/swag"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout       = 5 * time.Second
	metricsUpdateInterval = 15 * time.Second
)

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>LogMacster API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// StartServer serves the grid API for ctrl until ctx is canceled
func StartServer(ctx context.Context, ctrl *editor.Controller, config ServerConfig, logger *log.Logger) error {
	if SwaggerInfo != nil {
		SwaggerInfo.Host = fmt.Sprintf("localhost:%d", config.Port)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := NewServer(ctrl, config, NewMetrics(registry), logger)
	return server.Start(ctx, registry)
}

// Router builds the HTTP handler. Metrics are exposed from gatherer, or
// the default gatherer when it is nil.
func (s *Server) Router(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metrics := s.metrics

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Document and schema
		r.Get("/document", metrics.InstrumentHandler("GET", "/api/v1/document", s.handleDocument))
		r.Get("/document/adif", metrics.InstrumentHandler("GET", "/api/v1/document/adif", s.handleDocumentADIF))
		r.Get("/fields", metrics.InstrumentHandler("GET", "/api/v1/fields", s.handleFields))
		r.Get("/columns", metrics.InstrumentHandler("GET", "/api/v1/columns", s.handleColumns))
		r.Post("/validate", metrics.InstrumentHandler("POST", "/api/v1/validate", s.handleValidate))

		// Records
		r.Get("/records", metrics.InstrumentHandler("GET", "/api/v1/records", s.handleListRecords))
		r.Post("/records", metrics.InstrumentHandler("POST", "/api/v1/records", s.handleCreateRecord))
		r.Delete("/records", metrics.InstrumentHandler("DELETE", "/api/v1/records", s.handleDeleteRecords))
		r.Put("/records/{id}/fields/{field}",
			metrics.InstrumentHandler("PUT", "/api/v1/records/{id}/fields/{field}", s.handleSetField))

		// File menu
		r.Post("/file/open", metrics.InstrumentHandler("POST", "/api/v1/file/open", s.handleOpen))
		r.Post("/file/save", metrics.InstrumentHandler("POST", "/api/v1/file/save", s.handleSave))
		r.Post("/file/save-as", metrics.InstrumentHandler("POST", "/api/v1/file/save-as", s.handleSaveAs))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", s.handleSwagger)

	return r
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/swagger.json", "/swagger/swagger.yaml":
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			s.logger.Error("failed to generate swagger doc", "error", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		// the yaml path serves the same JSON document
		if r.URL.Path == "/swagger/swagger.yaml" {
			w.Header().Set("Content-Type", "application/yaml")
		} else {
			w.Header().Set("Content-Type", "application/json")
		}
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// Start listens on the configured address and serves until ctx is canceled
func (s *Server) Start(ctx context.Context, gatherer prometheus.Gatherer) error {
	addr := net.JoinHostPort(s.config.Bind, fmt.Sprint(s.config.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, gatherer)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener, gatherer prometheus.Gatherer) error {
	srv := &http.Server{
		Handler:           s.Router(gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting LogMacster REST API server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down REST API server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		s.startMetricsUpdater(gctx)
		return nil
	})

	return g.Wait()
}

// startMetricsUpdater keeps the record gauge current for changes made
// outside the API
func (s *Server) startMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(metricsUpdateInterval)
	defer ticker.Stop()

	s.metrics.UpdateRecordCount(s.store().Len())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.metrics.UpdateRecordCount(s.store().Len())
		}
	}
}
