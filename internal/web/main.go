// Package web wires the fiber application: template engine, static
// assets, access logging, metrics and the page and API handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/config"
	accesslog "github.com/GoFolio/GoFolio/internal/logger/adapter/fiber"
	"github.com/GoFolio/GoFolio/internal/mail"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler/admin"
	"github.com/GoFolio/GoFolio/internal/web/handler/contact"
	"github.com/GoFolio/GoFolio/internal/web/handler/home"
	"github.com/GoFolio/GoFolio/internal/web/handler/login"
	"github.com/GoFolio/GoFolio/internal/web/handler/portfolio"
	"github.com/GoFolio/GoFolio/internal/web/handler/sitesettings"
	"github.com/GoFolio/GoFolio/internal/web/handler/skill"
	"github.com/GoFolio/GoFolio/internal/web/handler/technology"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: flip the alive flag first so
	// the load balancer can drain this instance.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: waiting %d seconds before stopping",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration, store and
// contact notifier.
func New(cfg *config.Config, st store.Store, notifier mail.Notifier) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "GoFolio",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: "/checkalive",
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Get("/checkalive", func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes and auth guards)
	mustInit := func(name string, err error) {
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to init %s handler", name)
		}
	}

	mustInit("login", login.Handler.Init(app, cfg, st))
	mustInit("contact", contact.Handler.Init(app, cfg, st, notifier))
	mustInit("portfolio", portfolio.Handler.Init(app, cfg, st))
	mustInit("skill", skill.Handler.Init(app, cfg, st))
	mustInit("technology", technology.Handler.Init(app, cfg, st))
	mustInit("sitesettings", sitesettings.Handler.Init(app, cfg, st))
	mustInit("home", home.Handler.Init(app, cfg, st))
	mustInit("admin", admin.Handler.Init(app, cfg, st))

	return service
}
