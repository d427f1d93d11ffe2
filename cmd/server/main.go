package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/spotifyauth/handler"
	"github.com/dmitrymomot/spotifyauth/modules/spotifyauth"
	"github.com/dmitrymomot/spotifyauth/pkg/clientip"
	"github.com/dmitrymomot/spotifyauth/pkg/config"
	"github.com/dmitrymomot/spotifyauth/pkg/cookie"
	"github.com/dmitrymomot/spotifyauth/pkg/environment"
	"github.com/dmitrymomot/spotifyauth/pkg/httpserver"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
	"github.com/dmitrymomot/spotifyauth/pkg/requestid"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"spotifyauth"`
}

func main() {
	var (
		app       appConfig
		serverCfg httpserver.Config
		cookieCfg cookie.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&serverCfg)
	config.MustLoad(&cookieCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if environment.Normalize(app.Env).IsProduction() && !cookieCfg.Secure {
		log.Warn("state cookie is not marked Secure in production")
	}

	auth := spotifyauth.New(
		spotifyauth.WithLogger(log),
		spotifyauth.WithCookieManager(cookie.NewFromConfig(cookieCfg)),
		spotifyauth.WithErrorHandler(handler.NewErrorHandler(log)),
	)

	// Spotify credentials are checked per request; a missing one only
	// affects readiness.
	if err := auth.Ready(context.Background()); err != nil {
		log.Warn("spotify credentials incomplete", logger.Error(err))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, auth.Ready))
	r.Mount("/api", auth.Handle())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))

	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
