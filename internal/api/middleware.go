package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/id"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/launch"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// LaunchCookie may carry the launch token for browser navigation.
const LaunchCookie = "xapi_launch"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging logs one line per request and tags the response with a request
// id, reusing the caller's X-Request-ID when it is a UUID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get(RequestIDHeader)
			if !id.Valid(reqID) {
				reqID = id.GenerateID()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", reqID,
			)
		})
	}
}

// CORS allows browser clients from origin ("*" for any).
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLaunch rejects requests without a valid launch token, taken from
// a Bearer Authorization header or the launch cookie, and attaches the
// claims to the request context.
func RequireLaunch(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := launch.Parse(secret, launchToken(r))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "launch session required")
				return
			}
			next.ServeHTTP(w, r.WithContext(launch.WithClaims(r.Context(), claims)))
		})
	}
}

func launchToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(LaunchCookie); err == nil {
		return c.Value
	}
	return ""
}

// RequireInstructor allows only instructor launches. It must run after
// RequireLaunch.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := launch.FromContext(r.Context())
		if !ok || !c.Instructor {
			respondError(w, http.StatusForbidden, "instructor role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
