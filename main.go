package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := bootstrap()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	logInfo("Starting wordsearch in %s mode", cfg.envName())

	app := NewApp(cfg)
	router := app.setupRouter()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.runCleanupJob(ctx, cleanupInterval(cfg.SessionTimeout))

	app.startServer(router)
}

// setupRouter wires middleware and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(noStoreMiddleware())
	router.MaxMultipartMemory = app.Config.MaxUploadBytes

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	limited := app.rateLimitMiddleware()
	router.GET(RouteState, app.stateHandler)
	router.POST(RouteWords, limited, app.wordsHandler)
	router.POST(RouteWordsUpload, limited, app.uploadHandler)
	router.POST(RouteCriteria, limited, app.addCriterionHandler)
	router.POST(RouteCriteriaClear, limited, app.clearCriteriaHandler)
	router.DELETE(RouteCriterion, limited, app.removeCriterionHandler)
	router.POST(RouteSearch, limited, app.searchHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	return router
}

func (app *App) startServer(router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", app.Config.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

func cleanupInterval(timeout time.Duration) time.Duration {
	return max(timeout/2, time.Minute)
}

// runCleanupJob drops idle sessions from memory and disk once at startup and
// then every interval until ctx is done.
func (app *App) runCleanupJob(ctx context.Context, interval time.Duration) {
	app.cleanupSessions()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logInfo("Session cleanup job stopped")
			return
		case <-ticker.C:
			app.cleanupSessions()
		}
	}
}

func (app *App) cleanupSessions() {
	if n := app.evictIdleSessions(app.Config.SessionTimeout); n > 0 {
		logInfo("Evicted %d idle sessions from memory", n)
	}
	if _, err := app.cleanupOldSessions(app.Config.SessionTimeout); err != nil {
		logWarn("Failed to clean up session files: %v", err)
	}
}
