package server // import "bookhaven/internal/server"

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	v1 "bookhaven/internal/api/v1"
	"bookhaven/internal/config"
	"bookhaven/internal/hardcover"
	"bookhaven/internal/http/request"
	"bookhaven/internal/log"
	"bookhaven/internal/metrics"
	"bookhaven/internal/store"
	"bookhaven/internal/version"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// StartServer starts the HTTP server
func StartServer(ctx context.Context, store *store.Store, metadata *hardcover.Client) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: setupHandler(store, metadata),
	}

	startHTTPServer(server)

	return server, nil
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Logger.Error("HTTP server error", zap.Error(err))
			os.Exit(1)
		}
	}()
}

func setupHandler(store *store.Store, metadata *hardcover.Client) http.Handler {
	router := mux.NewRouter()

	apiHandler := v1.NewHandler(store, metadata)
	// Setup the API routes
	v1.Server(router, apiHandler)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			http.Error(w, "Database Connection Error", http.StatusInternalServerError)
			return
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	if config.Opts.MetricsCollector {
		metrics.RegisterDBStats(store.DBStats)
		router.Handle("/metrics", promhttp.Handler()).Name("metrics")
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				route := mux.CurrentRoute(r)

				// Returns a 404 if the client is not authorized to access the metrics endpoint.
				if route.GetName() == "metrics" && !isAllowedToAccessMetricsEndpoint(r) {
					log.Warn("Authentication failed while accessing the metrics endpoint",
						zap.String("client_ip", request.FindClientIP(r)),
						zap.String("client_user_agent", r.UserAgent()),
						zap.String("client_remote_addr", r.RemoteAddr),
					)
					http.NotFound(w, r)
					return
				}

				next.ServeHTTP(w, r)
			})
		})
	}

	return router
}

func isAllowedToAccessMetricsEndpoint(r *http.Request) bool {
	clientIP := net.ParseIP(request.FindClientIP(r))
	if clientIP == nil {
		return false
	}
	for _, cidr := range config.Opts.MetricsAllowedNetworks {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn("Metrics endpoint has an invalid allowed network", zap.String("network", cidr))
			continue
		}
		if network.Contains(clientIP) {
			return true
		}
	}
	return false
}
