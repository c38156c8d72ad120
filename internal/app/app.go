package app

import (
	"strings"
	"time"

	"github.com/lodgera/lodgera-portal/internal/booking"
	"github.com/lodgera/lodgera-portal/internal/cache"
	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/config"
	"github.com/lodgera/lodgera-portal/internal/handlers"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Sessions *session.Store
	Drafts   *booking.DraftStore
	Client   *client.BookingClient

	// HTTP handlers
	PageHandler         *handlers.PageHandler
	AuthHandler         *handlers.AuthHandler
	HomeHandler         *handlers.HomeHandler
	SearchHandler       *handlers.SearchHandler
	HotelHandler        *handlers.HotelHandler
	CheckoutHandler     *handlers.CheckoutHandler
	ConfirmationHandler *handlers.ConfirmationHandler
	AdminHandler        *handlers.AdminHandler
	HealthHandler       *handlers.HealthHandler
	VersionHandler      *handlers.VersionHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE — do not use in production")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	a.Sessions = session.NewStore(cfg.Session.Secret, cfg.Session.MaxAge)
	a.Drafts = booking.NewDraftStore()

	responseCache := cache.New(time.Duration(cfg.Cache.TTLSeconds)*time.Second, cfg.Cache.MaxEntries)
	a.Client = client.NewBookingClient(cfg.API.URL, responseCache)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Sessions, a.Config.IsDevMode())
	a.AuthHandler = handlers.NewAuthHandler(a.Logger, a.PageHandler, a.Sessions, a.Client)
	a.HomeHandler = handlers.NewHomeHandler(a.Logger, a.PageHandler, a.Sessions, a.Client)
	a.SearchHandler = handlers.NewSearchHandler(a.Logger, a.PageHandler, a.Sessions, a.Client)
	a.HotelHandler = handlers.NewHotelHandler(a.Logger, a.PageHandler, a.Sessions, a.Client, a.Drafts)
	a.CheckoutHandler = handlers.NewCheckoutHandler(a.Logger, a.PageHandler, a.Sessions, a.Client, a.Drafts)
	a.ConfirmationHandler = handlers.NewConfirmationHandler(a.Logger, a.PageHandler, a.Sessions, a.Client)
	a.AdminHandler = handlers.NewAdminHandler(a.Logger, a.PageHandler, a.Sessions, a.Client)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
