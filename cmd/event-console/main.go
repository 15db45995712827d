package main

import (
	"context"
	"errors"
	"eventConsole/internal/config"
	"eventConsole/internal/guard"
	"eventConsole/internal/http-server/handlers/admin/createAdmin"
	"eventConsole/internal/http-server/handlers/auth/login"
	"eventConsole/internal/http-server/handlers/auth/logout"
	"eventConsole/internal/http-server/handlers/auth/sessionInfo"
	"eventConsole/internal/http-server/handlers/event/createEvent"
	"eventConsole/internal/http-server/handlers/event/deleteEvent"
	"eventConsole/internal/http-server/handlers/event/getEvent"
	"eventConsole/internal/http-server/handlers/event/listEvents"
	"eventConsole/internal/http-server/handlers/event/updateEvent"
	"eventConsole/internal/http-server/handlers/registration/listRegistrations"
	"eventConsole/internal/http-server/handlers/registration/toggleAttendance"
	"eventConsole/internal/http-server/middleware/mwlogger"
	"eventConsole/internal/lib/logger/handlers/slogpretty"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/roster"
	"eventConsole/internal/session"
	"eventConsole/internal/upstream"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event console", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	sessions, err := session.New(cfg.SessionFile)
	if err != nil {
		log.Error("failed to init session store", sl.Err(err))
		os.Exit(1)
	}

	g := guard.New(log, sessions)
	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, sessions)
	rosters := roster.NewCache()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/admin/login", login.New(log, client, sessions))
	router.Post("/admin/logout", logout.New(log, sessions))
	router.Get("/admin/me", sessionInfo.New(log, sessions))

	router.Group(func(r chi.Router) {
		r.Use(g.RequireAdmin)

		r.Post("/admin/admins", createAdmin.New(log, client))
		r.Get("/admin/events", listEvents.New(log, client, time.Now))
		r.Post("/admin/events", createEvent.New(log, client, sessions))
		r.Get("/admin/events/{id}", getEvent.New(log, client))
		r.Put("/admin/events/{id}", updateEvent.New(log, client, sessions))
		r.Delete("/admin/events/{id}", deleteEvent.New(log, client))
		r.Get("/admin/events/{id}/registrations", listRegistrations.New(log, client, rosters))
		r.Put("/admin/registrations/{id}/toggle-attendance", toggleAttendance.New(log, client, rosters))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	// The ticker gets its own channel: receiving from stop here would
	// swallow the signal main is waiting on.
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err = sessions.ReloadIfChanged(); err != nil {
					log.Error("failed to reload session file", sl.Err(err))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
