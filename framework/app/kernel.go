package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-dfc-http/framework/config"
	gohttp "github.com/km-arc/go-dfc-http/framework/http"
	"github.com/km-arc/go-dfc-http/framework/log"
	"github.com/km-arc/go-dfc-http/framework/routing"
)

// Application bundles what a DSS API host needs: config, a logger, the
// request helper and a router that already runs the DSS middleware.
type Application struct {
	Config *config.Config
	Router *routing.Router
	Helper *gohttp.Helper
	Logger zerolog.Logger
}

// New bootstraps the application.
//
//	app := app.New()
//	app.Router.Get("/", func(w http.ResponseWriter, r *http.Request, dss gohttp.DSS) { ... })
//	app.Run()
func New(envFiles ...string) *Application {
	cfg := config.Load(envFiles...)
	log.Configure(log.Config{Level: cfg.Log.Level, Service: cfg.Log.Service})

	helper := gohttp.NewHelper()
	router := routing.New(helper, cfg.DSS.GenerateCorrelationID)

	return &Application{
		Config: cfg,
		Router: router,
		Helper: helper,
		Logger: log.WithComponent("app"),
	}
}

// Run starts the HTTP server on APP_PORT and blocks until it stops.
func (a *Application) Run() error {
	addr := ":" + a.Config.App.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.Logger.Info().
		Str("addr", addr).
		Str("env", a.Config.App.Env).
		Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
