package main

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/paddock/config"
	"github.com/padraicbc/paddock/ergast"
	"github.com/padraicbc/paddock/handlers"
	applog "github.com/padraicbc/paddock/logger"
	"github.com/padraicbc/paddock/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(applog.Options{
		Debug:      cfg.Debug,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	cest, est, err := cfg.Zones()
	if err != nil {
		logger.Fatal("load event zones failed", zap.Error(err))
	}

	records := store.New(cfg.DataDir)
	f1 := ergast.New(cfg.ErgastURL, ergast.WithSeason(cfg.Season), ergast.WithTimeout(cfg.HTTPTimeout))
	h := handlers.New(records, f1, cest, est)

	logger.Info("data sources",
		zap.String("bets", records.Path(store.BetsFile)),
		zap.String("users", records.Path(store.UsersFile)),
		zap.String("events", records.Path(store.EventsFile)),
		zap.String("results", f1.LastRaceURL()),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.ContextTimeout(2 * cfg.HTTPTimeout))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/bets", h.Bets)
	api.GET("/users", h.Users)
	api.GET("/leaderboard", h.Leaderboard)
	api.GET("/events", h.Events)
	api.GET("/events/next", h.NextEvent)
	api.GET("/results/qualifying", h.QualifyingResults)
	api.GET("/results/race", h.RaceResults)
	api.GET("/results/race/scored", h.ScoredBets)
	api.GET("/standings/drivers", h.DriverStandings)
	api.GET("/standings/constructors", h.ConstructorStandings)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.HTTPTimeout,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting server", zap.String("mode", "tls"), zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
