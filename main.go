package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/degennews/web/articles"
	"github.com/degennews/web/config"
	"github.com/degennews/web/logger"
	"github.com/degennews/web/middleware"
	"github.com/degennews/web/notifier"
	"github.com/degennews/web/sheets"
	"github.com/degennews/web/utils"
)

const (
	warmupMaxElapsedTime  = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err.Error())
		os.Exit(1)
	}
	log := logger.New(cfg)

	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, "2015-01-01T00:00:00Z")
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(1)

	slacknotifier := notifier.NewSlack(cfg.Slack.NewsBotToken, cfg.Slack.AlertsChannelID, log)

	sheetsClient, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		log.Error("exiting: could not set up the spreadsheet client: %s", err.Error())
		os.Exit(1)
	}

	repo := articles.NewRepository(sheetsClient, log)

	apiServer := startHTTPServer(cfg, log, repo, slacknotifier)
	metricsServer := startMetricsServer(cfg, log)

	// The server is already accepting requests; the first sheet read
	// happens here so a slow or flaky remote doesn't block startup.
	go warmCacheWithRetry(ctx, repo, log)

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down metrics server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}
}

func warmCacheWithRetry(ctx context.Context, repo *articles.Repository, log logger.Logger) {
	operation := func() (int, error) {
		count, err := repo.Warm(ctx)
		if err != nil {
			if sheets.IsRateLimited(err) {
				log.Warn("sheets rate limit hit while warming the cache, holding off")
				return 0, backoff.RetryAfter(60)
			}
			log.Warn("warming the article cache: %s", err.Error())
			return 0, err
		}
		return count, nil
	}

	count, err := backoff.Retry[int](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(warmupMaxElapsedTime),
	)
	if err != nil {
		log.Error("could not warm the article cache after retries: %s", err.Error())
		return
	}
	log.Info("article cache warmed with %d articles", count)
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	repo *articles.Repository,
	slacknotifier *notifier.Slack,
) *http.Server {
	formDecoder := form.NewDecoder()
	formValidator := validator.New(validator.WithRequiredStructEnabled())

	handler := Handler{
		config:        cfg,
		formDecoder:   formDecoder,
		formValidator: formValidator,
		repo:          repo,
		slacknotifier: slacknotifier,
		log:           log,
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.AccessLog(log))
	mux.Handle("/static/*", handler.StaticFiles())

	mux.Get("/", handler.HomeView)
	mux.Get("/articles/{slug}", handler.ArticleDetailsView)
	mux.Get("/categories/{category}", handler.CategoryView)

	mux.Get("/rss.xml", handler.RSSView)
	mux.Get("/sitemap.xml", handler.SitemapView)
	mux.Get("/robots.txt", handler.RobotsView)

	mux.Route("/api", func(mux chi.Router) {
		mux.Get("/articles", utils.MakeAPIHandler(handler.ArticlesAPI))
		mux.Get("/categories", utils.MakeAPIHandler(handler.CategoriesAPI))
		mux.Get("/posts.json", handler.PostsJSONAPI)
		mux.Get("/og", handler.OGImageAPI)
		mux.Post("/refresh", utils.MakeAPIHandler(handler.RefreshAPI))
		mux.Post("/revalidate", utils.MakeAPIHandler(handler.RevalidateAPI))
	})

	mux.Get("/healthz", handler.Healthz)
	mux.NotFound(handler.NotFoundView)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
