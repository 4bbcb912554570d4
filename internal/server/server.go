package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"customer-service/internal/config"
	"customer-service/internal/handlers"
	"customer-service/internal/middleware"
	"customer-service/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies are the collaborators the HTTP layer is built from
type Dependencies struct {
	DB        handlers.Pinger
	Customers services.CustomerServiceInterface
	Tokens    services.TokenServiceInterface
	Logger    services.CustomerLoggerInterface
	Metrics   services.MetricsRecorderInterface
	Tracer    trace.Tracer
	Gatherer  prometheus.Gatherer
}

// Server owns the echo instance and the rate limiter janitor
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	log     *slog.Logger
	limiter *middleware.RateLimiter
}

// New builds the echo instance with the middleware chain and every route registered
func New(cfg *config.Config, deps Dependencies, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(limiter.Middleware())

	s := &Server{
		echo:    e,
		cfg:     cfg,
		log:     log,
		limiter: limiter,
	}
	s.registerRoutes(deps)
	return s
}

func (s *Server) registerRoutes(deps Dependencies) {
	health := handlers.NewHealthCheckHandler(deps.DB, s.cfg.Server.ProjectName, s.cfg.Server.ProjectVersion)
	s.echo.GET("/", health.Root)
	s.echo.GET("/health", health.HealthCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	customers := handlers.NewCustomerHandler(deps.Customers, deps.Logger, deps.Metrics, deps.Tracer)

	api := s.echo.Group(s.cfg.Server.APIPrefix)
	group := api.Group("/customers", middleware.RequireAuth(deps.Tokens, deps.Logger, deps.Metrics))
	group.POST("", customers.CreateCustomer)
	group.GET("", customers.GetAllCustomers)
	group.GET("/email/:email", customers.GetCustomerByEmail)
	// keeps a bare /email from being read as the id "email"
	group.GET("/email", routeNotFound)
	group.GET("/:id", customers.GetCustomer)
	group.PUT("/:id", customers.UpdateCustomer)
	group.DELETE("/:id", customers.DeleteCustomer)
}

func routeNotFound(echo.Context) error {
	return echo.ErrNotFound
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Address is the host:port the server listens on
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "address", s.Address(), "environment", s.cfg.Server.Environment)
		if err := s.echo.Start(s.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.limiter.Stop()
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests and stops background work
func (s *Server) Shutdown() error {
	defer s.limiter.Stop()

	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
