package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// Limiter decides whether a request may proceed.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a token bucket limiter allowing limit requests per
// second with the given burst.
func NewLimiter(limit int, burst int) *Limiter {
	return &Limiter{rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the request must be rejected.
func (l *Limiter) Limit() bool {
	return !l.l.Allow()
}

// NewRouter returns a router serving the handler routes behind request
// id, access log and rate limit middleware. A nil limiter disables rate limiting.
func NewRouter(h *Handler, limiter *Limiter, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, accessLog(logger))
	if limiter != nil {
		r.Use(rateLimit(limiter))
	}
	h.Register(r)
	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, req)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func accessLog(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, req)
			logger.Info("Request served",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestID", req.Header.Get(RequestIDHeader)))
		})
	}
}

func rateLimit(l *Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if l.Limit() {
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
