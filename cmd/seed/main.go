package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"github.com/hessin2010king/backend/internal/auth"
	"github.com/hessin2010king/backend/internal/logger"
	"github.com/hessin2010king/backend/internal/schema"
	"github.com/hessin2010king/backend/internal/storage/authors"
	"github.com/hessin2010king/backend/internal/storage/books"
	"github.com/hessin2010king/backend/internal/storage/categories"
	"github.com/hessin2010king/backend/internal/storage/reviews"
	"github.com/hessin2010king/backend/internal/storage/users"
	"github.com/hessin2010king/backend/internal/types"
)

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

var (
	logLevel      = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	dbConnStr     = os.Getenv("DATABASE_URL")
	adminUser     = getEnvOrDefault("SEED_ADMIN_USER", "admin")
	adminPassword = os.Getenv("SEED_ADMIN_PASSWORD")
	withDemoData  = getEnvOrDefault("SEED_DEMO_DATA", "no")
)

// Seeds the catalog: ensures the schema, provisions the admin account
// through the regular signup path and optionally inserts a small demo
// catalog. Safe against an existing database, an already-taken admin
// username is left alone.
func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		lvl = slog.LevelInfo
	}
	logger.SetupSLog(lvl, path.Dir(path.Dir(path.Dir(thisFile))), struct{}{})

	if adminPassword == "" {
		slog.Error("SEED_ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	cfg, err := pgxpool.ParseConfig(dbConnStr)
	if err != nil {
		slog.Error("Failed to parse DATABASE_URL: " + err.Error())
		os.Exit(1)
	}

	cfg.ConnConfig.Tracer = logger.NewPGXTracer()

	pg, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to create postgres pool: " + err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	err = schema.Ensure(ctx, pg, slog.Default())
	if err != nil {
		slog.Error("failed to ensure schema: " + err.Error())
		os.Exit(1)
	}

	gate := auth.NewGate(users.NewPGXRepository(pg, slog.Default()), auth.BcryptHasher{})

	_, err = gate.Signup(ctx, auth.SignupRequest{
		Username: adminUser,
		Password: adminPassword,
		Role:     types.RoleAdmin,
	})
	switch {
	case err == nil:
		slog.Info("Created admin account " + adminUser)
	case errors.Is(err, auth.ErrUsernameTaken):
		slog.Info("Admin account " + adminUser + " already exists, leaving it alone")
	default:
		slog.Error("failed to create admin account: " + err.Error())
		os.Exit(1)
	}

	if withDemoData != "yes" {
		return
	}

	err = seedDemo(ctx, pg)
	if err != nil {
		slog.Error("failed to seed demo catalog: " + err.Error())
		os.Exit(1)
	}

	slog.Info("Demo catalog seeded")
}

func seedDemo(ctx context.Context, pg *pgxpool.Pool) error {
	ar := authors.NewPGXRepository(pg, slog.Default())
	cr := categories.NewPGXRepository(pg, slog.Default())
	br := books.NewPGXRepository(pg, slog.Default())
	rr := reviews.NewPGXRepository(pg, slog.Default())

	fiction, err := cr.Create(ctx, &types.Category{Name: "Fiction"})
	if err != nil {
		return err
	}

	history, err := cr.Create(ctx, &types.Category{Name: "History"})
	if err != nil {
		return err
	}

	born := func(year int) types.Date {
		return types.Date{Time: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)}
	}

	austen, err := ar.Create(ctx, &types.Author{
		FirstName:   "Jane",
		LastName:    "Austen",
		DateOfBirth: born(1775),
	})
	if err != nil {
		return err
	}

	gibbon, err := ar.Create(ctx, &types.Author{
		FirstName:   "Edward",
		LastName:    "Gibbon",
		DateOfBirth: born(1737),
	})
	if err != nil {
		return err
	}

	for _, seed := range []struct {
		book    types.Book
		ratings []int32
	}{
		{
			book: types.Book{
				Name:        "Pride and Prejudice",
				Description: "A novel of manners.",
				CategoryId:  &fiction.Id,
				AuthorId:    &austen.Id,
			},
			ratings: []int32{5, 4},
		},
		{
			book: types.Book{
				Name:        "Emma",
				Description: "Matchmaking in Highbury.",
				CategoryId:  &fiction.Id,
				AuthorId:    &austen.Id,
			},
			ratings: []int32{4},
		},
		{
			book: types.Book{
				Name:        "The History of the Decline and Fall of the Roman Empire",
				Description: "Six volumes of Rome.",
				CategoryId:  &history.Id,
				AuthorId:    &gibbon.Id,
			},
		},
	} {
		created, err := br.Create(ctx, &seed.book)
		if err != nil {
			return err
		}

		for _, rating := range seed.ratings {
			_, err = rr.Create(ctx, &types.Review{
				BookId:     created.Id,
				ReviewText: "Seeded review",
				Rating:     rating,
				Stars:      rating,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}
