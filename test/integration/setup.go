package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/anuragjais-11/UserService/internal/adapters/handler/http"
	bcrypthash "github.com/anuragjais-11/UserService/internal/adapters/hash/bcrypt"
	repo "github.com/anuragjais-11/UserService/internal/adapters/repository/postgres"
	"github.com/anuragjais-11/UserService/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	DBContainer testcontainers.Container
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()
	app.Server.Close()
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.DBContainer.Terminate(context.Background()))
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	tokenRepo := repo.NewTokenRepository(db)
	hasher := bcrypthash.NewHasher(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authSvc := services.NewAuthService(userRepo, tokenRepo, hasher, logger, time.Hour, 32)
	userSvc := services.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	router := handler.NewHandler(authHandler, userHandler, authSvc)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		DBContainer: dbContainer,
	}
}
