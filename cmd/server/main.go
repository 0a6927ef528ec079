package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/anuragjais-11/UserService/internal/adapters/handler/http"
	bcrypthash "github.com/anuragjais-11/UserService/internal/adapters/hash/bcrypt"
	"github.com/anuragjais-11/UserService/internal/adapters/repository/postgres"
	"github.com/anuragjais-11/UserService/internal/config"
	"github.com/anuragjais-11/UserService/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)
	hasher := bcrypthash.NewHasher(cfg.BcryptCost)

	authSvc := services.NewAuthService(userRepo, tokenRepo, hasher, logger, cfg.TokenTTL, cfg.TokenLength)
	userSvc := services.NewUserService(userRepo)

	authHandler := http.NewAuthHandler(authSvc)
	userHandler := http.NewUserHandler(userSvc)
	handler := http.NewHandler(authHandler, userHandler, authSvc)

	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
