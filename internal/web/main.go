// Package web builds the fiber app of the JSON API.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	fiberrecover "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	fiberlogger "github.com/GoPowerDNS-Admin/GoAuth-API/internal/logger/adapter/fiber"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler/account"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler/admin/user"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler/login"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/web/handler/logout"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = handler.RootPath + "checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = handler.RootPath + "metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	api          handler.AuthAPI
	classifier   *failure.Classifier
}

// Option configures the web service.
type Option func(*Service)

// WithClassifier replaces the default failure classifier.
func WithClassifier(classifier *failure.Classifier) Option {
	return func(s *Service) {
		if classifier != nil {
			s.classifier = classifier
		}
	}
}

// WithFastShutdown skips the drain period on shutdown.
func WithFastShutdown() Option {
	return func(s *Service) {
		s.fastShutDown = true
	}
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			doneFiber <- fmt.Errorf("fiber listen error: %w", err)

			return
		}

		doneFiber <- nil
	}()

	return <-doneFiber // wait for fiber to stop
}

// WaitShutdown waits for a SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive answers OK.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, api handler.AuthAPI, opts ...Option) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if api == nil {
		panic("auth api cannot be nil")
	}

	service := &Service{
		cfg:        cfg,
		api:        api,
		classifier: failure.NewClassifier(),
	}

	for _, opt := range opts {
		opt(service)
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			AppName:       cfg.Title,
			BodyLimit:     cfg.Webserver.BodyLimit,
			CaseSensitive: true,
			Immutable:     true,
			ErrorHandler:  service.errorHandler,
		},
	)

	service.App = app

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		ErrorHandler:  service.errorHandler,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(fiberrecover.New(fiberrecover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes with bearer and admin checks)
	for _, h := range []handler.Service{
		&login.Handler,
		&logout.Handler,
		&account.Handler,
		&user.Handler,
	} {
		if err := h.Init(app, cfg, api); err != nil {
			log.Fatal().Err(err).Msg(handler.ErrNilACAFatalLogMsg)
		}
	}

	// everything else is unknown
	app.Use(notFound)

	service.alive.Store(true)

	return service
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}
