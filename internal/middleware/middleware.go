package middleware // import "bookhaven/internal/middleware"

import (
	"net/http"
	"strconv"
	"time"

	"bookhaven/internal/http/request"
	"bookhaven/internal/log"
	"bookhaven/internal/metrics"
	"bookhaven/internal/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Middleware struct {
	store *store.Store
}

func NewMiddleware(store *store.Store) *Middleware {
	return &Middleware{store: store}
}

func (m *Middleware) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "X-Auth-Token, Authorization, Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingRequest logs every request and records request metrics.
func (m *Middleware) LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path).Observe(elapsed.Seconds())

		log.Debug("Handled request",
			zap.String("client_ip", request.FindClientIP(r)),
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Int("status", recorder.status),
			zap.Duration("elapsed", elapsed),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
