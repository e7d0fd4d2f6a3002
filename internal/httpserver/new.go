package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"item-service/internal/item/repository"
	"item-service/internal/middleware"
	"item-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	handler         http.Handler
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Edge
	corsOrigins    []string
	metricsEnabled bool
	mw             middleware.Middleware

	// Item domain
	itemRepo repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	CORSOrigins    []string
	MetricsEnabled bool
	Middleware     middleware.Config

	ItemRepo repository.Repository
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.CORSOrigins,
		metricsEnabled:  cfg.MetricsEnabled,
		mw:              middleware.New(logger, cfg.Middleware),
		itemRepo:        cfg.ItemRepo,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	return nil
}
