package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Emannuh254/server-jobs/internal/http/handlers"
	"github.com/Emannuh254/server-jobs/internal/http/metrics"
	httpmw "github.com/Emannuh254/server-jobs/internal/http/middleware"
	"github.com/Emannuh254/server-jobs/internal/http/response"
)

type RouterDependencies struct {
	JobHandler     *handlers.JobHandler
	StatsHandler   *handlers.StatsHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *metrics.Handler
	Metrics        *metrics.Collector
	Limiter        httpmw.Limiter
	CORSOrigins    []string
	RequestTimeout time.Duration
}

type Router struct {
	deps       RouterDependencies
	createJob  http.Handler
	apiVersion map[string]string
}

const maxBodyBytes = 1 << 20

// Write bursts beyond this trip the limiter; generous enough for a hiring
// drive, tight enough to stop scripted spam.
const (
	postLimit  = 30
	postWindow = time.Minute
)

func NewRouter(deps RouterDependencies) http.Handler {
	r := &Router{
		deps: deps,
		apiVersion: map[string]string{
			"message": "Jobs Parlour API",
			"version": "1.0.0",
		},
	}
	r.createJob = httpmw.RateLimit(deps.Limiter, httpmw.ClientIP, postLimit, postWindow)(
		http.HandlerFunc(deps.JobHandler.Create))
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging,
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.CORS(r.deps.CORSOrigins),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Historical clients call the API with and without trailing
		// slashes; normalize once instead of duplicating routes.
		path := req.URL.Path
		if path != "/" {
			path = strings.TrimSuffix(path, "/")
		}

		switch {
		case req.Method == http.MethodGet && path == "/":
			response.JSON(w, http.StatusOK, r.apiVersion)
		case req.Method == http.MethodGet && path == "/api/health":
			r.deps.HealthHandler.Get(w, req)
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
		case req.Method == http.MethodGet && path == "/api/stats":
			r.deps.StatsHandler.Get(w, req)
		case req.Method == http.MethodPost && (path == "/api/jobs" || path == "/api/jobs/post"):
			r.createJob.ServeHTTP(w, req)
		case req.Method == http.MethodGet && path == "/api/jobs":
			r.deps.JobHandler.List(w, req)
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/jobs/"):
			r.deps.JobHandler.Get(w, req)
		case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/jobs/"):
			r.deps.JobHandler.Update(w, req)
		case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/jobs/"):
			r.deps.JobHandler.Delete(w, req)
		default:
			http.NotFound(w, req)
		}
	})
}
