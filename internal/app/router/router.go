// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "cashtrackr_backend/internal/feature/auth/transport/handler"
	budgethandler "cashtrackr_backend/internal/feature/budgets/transport/handler"
	budgetmw "cashtrackr_backend/internal/feature/budgets/transport/middleware"
	"cashtrackr_backend/internal/platform/http/handler"
)

// Deps carries the handlers and middleware the router composes.
type Deps struct {
	Auth     *authhandler.AuthHandler
	Budgets  *budgethandler.BudgetHandler
	Expenses *budgethandler.ExpenseHandler

	// Authenticate is the bearer-token middleware guarding protected routes.
	Authenticate gin.HandlerFunc
	// Limiter throttles the public auth endpoints.
	Limiter gin.HandlerFunc

	BudgetFinder  budgetmw.BudgetFinder
	ExpenseFinder budgetmw.ExpenseFinder

	// AllowedOrigins restricts CORS in production. Empty means allow all,
	// which is the development behavior.
	AllowedOrigins []string
}

// NewRouter builds the gin engine with all API routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	if len(d.AllowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = d.AllowedOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		r.Use(cors.New(cfg))
	} else {
		r.Use(cors.Default())
	}

	// liveness probe
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// Public auth endpoints. The limiter throttles credential guessing and
	// token enumeration; it is a no-op outside production.
	auth := api.Group("/auth")
	auth.Use(d.Limiter)
	{
		auth.POST("/create-account", d.Auth.CreateAccount)
		auth.POST("/confirm-account", d.Auth.ConfirmAccount)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/forgot-password", d.Auth.ForgotPassword)
		auth.POST("/validate-token", d.Auth.ValidateToken)
		auth.POST("/reset-password/:token", d.Auth.ResetPassword)

		// Account endpoints require a valid bearer token.
		account := auth.Group("")
		account.Use(d.Authenticate)
		{
			account.GET("/user", d.Auth.User)
			account.PUT("/user", d.Auth.UpdateUser)
			account.POST("/update-password", d.Auth.UpdatePassword)
			account.POST("/check-password", d.Auth.CheckPassword)
		}
	}

	// Budget routes: every route requires authentication; routes naming a
	// budget also validate the id, load the record and check ownership.
	budgets := api.Group("/budgets")
	budgets.Use(d.Authenticate)
	{
		budgets.GET("", d.Budgets.List)
		budgets.POST("", d.Budgets.Create)

		single := budgets.Group("/:budgetId")
		single.Use(
			budgetmw.ValidateBudgetID(),
			budgetmw.ValidateBudgetExists(d.BudgetFinder),
			budgetmw.HasAccess(),
		)
		{
			single.GET("", d.Budgets.GetByID)
			single.PUT("", d.Budgets.UpdateByID)
			single.DELETE("", d.Budgets.DeleteByID)

			expenses := single.Group("/expenses")
			{
				expenses.GET("", d.Expenses.List)
				expenses.POST("", d.Expenses.Create)

				expense := expenses.Group("/:expenseId")
				expense.Use(
					budgetmw.ValidateExpenseID(),
					budgetmw.ValidateExpenseExists(d.ExpenseFinder),
					budgetmw.BelongsToBudget(),
				)
				{
					expense.GET("", d.Expenses.GetByID)
					expense.PUT("", d.Expenses.UpdateByID)
					expense.DELETE("", d.Expenses.DeleteByID)
				}
			}
		}
	}

	return r
}
