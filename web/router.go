package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mww/wr_zones/controller"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

func getRouter(ctrl controller.C, render *render.Render, logger *zap.Logger, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", dashboardHandler(ctrl, render))
	r.Get("/health", healthHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		if len(corsOrigins) == 0 {
			corsOrigins = []string{"*"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/teams", teamsAPIHandler(ctrl, render))
		r.Get("/teams/{team}/aggregate", teamAggregateAPIHandler(ctrl, render))
		r.Get("/players", playersAPIHandler(ctrl, render))
		r.Get("/players/{playerID}", getPlayerAPIHandler(ctrl, render))
		r.Get("/dashboard", dashboardAPIHandler(ctrl, render))
		r.Get("/zones/{entityID}/{zone}", zoneDetailAPIHandler(ctrl, render))
	})

	return r
}

// requestLogger writes one line per request once the response is done.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
