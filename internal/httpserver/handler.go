package httpserver

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"item-service/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.handler = srv.corsHandler().Handler(srv.gin)
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.RequestID(), srv.mw.Timeout())
	if srv.metricsEnabled {
		srv.gin.Use(srv.mw.Metrics())
	}
}

func (srv *HTTPServer) corsHandler() *cors.Cors {
	ctx := context.Background()
	wildcard := len(srv.corsOrigins) == 0 || slices.Contains(srv.corsOrigins, "*")
	if model.IsProduction(srv.environment) && wildcard {
		srv.l.Warnf(ctx, "CORS mode: production with wildcard origin")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins: %v", srv.environment, srv.corsOrigins)
	}

	return cors.New(cors.Options{
		AllowedOrigins: srv.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"Location", "X-Request-ID"},
	})
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsEnabled {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/v1")

	if err := srv.setupItemDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
