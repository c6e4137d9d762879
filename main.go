package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

// App holds the server's configuration and shared state.
type App struct {
	WordList     []string // immutable daily word pool, loaded at startup
	Sessions     map[string]*GuessSession
	SessionMutex sync.RWMutex
	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	WordListURL      string
	DictionaryAPIURL string
	StreakDir        string
	HTTPClient       *http.Client

	IsProduction    bool
	StartTime       time.Time
	CookieMaxAge    time.Duration
	StreakRetention time.Duration
	StaticCacheAge  time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
}

func newApp() *App {
	return &App{
		Sessions:   make(map[string]*GuessSession),
		LimiterMap: make(map[string]*rate.Limiter),

		WordListURL:      getEnvString("WORD_LIST_URL", DefaultWordListURL),
		DictionaryAPIURL: getEnvString("DICTIONARY_API_URL", DefaultDictionaryAPIURL),
		StreakDir:        getEnvString("STREAK_DIR", "data/streaks"),
		HTTPClient:       &http.Client{Timeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second)},

		IsProduction:    os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		StartTime:       time.Now(),
		CookieMaxAge:    getEnvDuration("COOKIE_MAX_AGE", 30*24*time.Hour),
		StreakRetention: getEnvDuration("STREAK_RETENTION", 60*24*time.Hour),
		StaticCacheAge:  getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func main() {
	_ = godotenv.Load()

	app := newApp()
	logInfo("Starting Reverse Dictionary in %s mode", map[bool]string{true: "production", false: "development"}[app.IsProduction])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	words, err := app.fetchWordList(ctx)
	cancel()
	if err != nil {
		// An unreachable word source is not fatal; the page shows the
		// no-puzzle state until a restart with a working source.
		logWarn("Failed to load word list from %s: %v", app.WordListURL, err)
	}
	app.WordList = words
	logInfo("Loaded %d playable words from word source", len(app.WordList))

	go func() {
		if err := cleanupOldStreakRecords(app.StreakDir, app.StreakRetention); err != nil {
			logWarn("Streak record cleanup failed: %v", err)
		}
	}()

	router := app.setupRouter()
	startServer(router)
}

func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(func(c *gin.Context) {
		app.applyCacheHeaders(c)
	})

	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		router.LoadHTMLGlob("dist/templates/*.html")
		router.Static("/static", "./dist/static")
	} else {
		logInfo("Serving development assets from source directories")
		router.LoadHTMLGlob("templates/*.html")
		router.Static("/static", "./static")
	}

	router.GET(RouteHome, app.homeHandler)
	router.GET(RoutePuzzle, app.puzzleHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.POST(RouteNewSession, app.rateLimitMiddleware(), app.newSessionHandler)
	router.GET(RouteShare, app.shareHandler)
	router.GET("/healthz", app.healthzHandler)

	return router
}

// applyCacheHeaders allows caching of static assets in production and
// disables caching everywhere else; puzzle state must always be fresh.
func (app *App) applyCacheHeaders(c *gin.Context) {
	if app.IsProduction && strings.HasPrefix(c.Request.URL.Path, "/static/") {
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(app.StaticCacheAge),
		})(c)
		c.Header("Vary", "Accept-Encoding")
		return
	}
	cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})(c)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
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

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
