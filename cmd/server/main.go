package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"github.com/hessin2010king/backend/internal/auth"
	"github.com/hessin2010king/backend/internal/logger"
	"github.com/hessin2010king/backend/internal/response"
	"github.com/hessin2010king/backend/internal/schema"
	"github.com/hessin2010king/backend/internal/server"
	"github.com/hessin2010king/backend/internal/storage/authors"
	"github.com/hessin2010king/backend/internal/storage/books"
	"github.com/hessin2010king/backend/internal/storage/categories"
	"github.com/hessin2010king/backend/internal/storage/reviews"
	"github.com/hessin2010king/backend/internal/storage/users"
	"github.com/hessin2010king/backend/internal/storage/views"
)

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

func getBoolEnv(key string) bool {
	if val := strings.ToLower(os.Getenv(key)); val == "yes" || val == "on" || val == "true" {
		return true
	}

	return false
}

var (
	logLevel   = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "debug"))
	dbConnStr  = os.Getenv("DATABASE_URL")
	bindAddr   = getEnvOrDefault("BIND_ADDR", ":5000")
	dbMaxConns = getEnvOrDefault("DB_MAX_CONNS", "10")
	debugMode  = getBoolEnv("DEBUG_MODE")
)

func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		lvl = slog.LevelDebug
	}
	logger.SetupSLog(lvl, path.Dir(path.Dir(path.Dir(thisFile))), middleware.RequestIDKey)

	if err != nil {
		slog.Error("Invalid log level specified in LOG_LEVEL, one of debug, info, warn or error expected")
		os.Exit(1)
	}

	maxConns, err := strconv.ParseInt(dbMaxConns, 10, 32)
	if err != nil || maxConns < 1 {
		slog.Error("DB_MAX_CONNS must be a positive integer")
		os.Exit(1)
	}

	cfg, err := pgxpool.ParseConfig(dbConnStr)
	if err != nil {
		slog.Error("Failed to parse DATABASE_URL: " + err.Error())
		os.Exit(1)
	}

	cfg.MaxConns = int32(maxConns)
	cfg.ConnConfig.Tracer = logger.NewPGXTracer()

	pg, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to create postgres pool: " + err.Error())
		os.Exit(1)
	}

	// Every other component assumes the tables exist, so a failure here is
	// fatal. Reruns are no-ops.
	err = schema.Ensure(context.Background(), pg, slog.Default())
	if err != nil {
		slog.Error("failed to ensure schema: " + err.Error())
		os.Exit(1)
	}

	ur := users.NewPGXRepository(pg, slog.Default())
	gate := auth.NewGate(ur, auth.BcryptHasher{})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Mount("/", server.Handler(
		authors.NewPGXRepository(pg, slog.Default()),
		categories.NewPGXRepository(pg, slog.Default()),
		books.NewPGXRepository(pg, slog.Default()),
		reviews.NewPGXRepository(pg, slog.Default()),
		ur,
		views.NewPGXRepository(pg, slog.Default()),
		gate,
		&response.Responder{DebugMode: debugMode},
	))

	slog.Info("Server listening on " + bindAddr)
	slog.Error("aborting: " + http.ListenAndServe(bindAddr, r).Error())
	os.Exit(1)
}
