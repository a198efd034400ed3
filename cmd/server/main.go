package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"cashtrackr_backend/internal/app/di"
	"cashtrackr_backend/internal/app/router"
	authadapters "cashtrackr_backend/internal/feature/auth/adapters"
	authemail "cashtrackr_backend/internal/feature/auth/email"
	authhandler "cashtrackr_backend/internal/feature/auth/transport/handler"
	authmw "cashtrackr_backend/internal/feature/auth/transport/middleware"
	authusecase "cashtrackr_backend/internal/feature/auth/usecase"
	budgetadapters "cashtrackr_backend/internal/feature/budgets/adapters"
	budgethandler "cashtrackr_backend/internal/feature/budgets/transport/handler"
	budgetusecase "cashtrackr_backend/internal/feature/budgets/usecase"
	"cashtrackr_backend/internal/platform/config"
	infradb "cashtrackr_backend/internal/platform/db"
	jwtmw "cashtrackr_backend/internal/platform/jwt"
	"cashtrackr_backend/internal/platform/mail"
	infraredis "cashtrackr_backend/internal/platform/redis"
	"cashtrackr_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded")
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional, backs the shared rate limiter)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable. Falling back to in-memory rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	budgetRepo := budgetadapters.NewBudgetRepository(db)
	expenseRepo := budgetadapters.NewExpenseRepository(db)

	// Platform collaborators
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)
	mailer := mail.NewSMTPMailer(cfg)
	emails := authemail.NewAuthEmail(mailer, cfg.FrontendURL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator, emails)
	budgetUC := budgetusecase.NewBudgetUsecase(budgetRepo)
	expenseUC := budgetusecase.NewExpenseUsecase(expenseRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	budgetH := budgethandler.NewBudgetHandler(budgetUC)
	expenseH := budgethandler.NewExpenseHandler(expenseUC)

	// Rate limiter: fixed window of 5 requests per minute on the public auth
	// endpoints, enforced only in production.
	limiter := ratelimiter.New(di.NewLimiterStore(rdb), 5, time.Minute, cfg.IsProduction())

	r := router.NewRouter(router.Deps{
		Auth:           authH,
		Budgets:        budgetH,
		Expenses:       expenseH,
		Authenticate:   authmw.Authenticate(verifier, userRepo),
		Limiter:        limiter.Middleware(),
		BudgetFinder:   budgetRepo,
		ExpenseFinder:  expenseRepo,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
