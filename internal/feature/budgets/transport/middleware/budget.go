// Package middleware provides the resource-loading and authorization
// middleware for the budgets feature.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	authmw "cashtrackr_backend/internal/feature/auth/transport/middleware"
	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

// ContextBudgetKey is the gin context key holding the budget loaded from the path.
const ContextBudgetKey = "budget"

// BudgetFinder resolves a budget ID to a record.
type BudgetFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Budget, error)
}

// parseID parses a positive integer path parameter.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ValidateBudgetID rejects requests whose budgetId path parameter is not a
// positive integer, before any lookup happens.
func ValidateBudgetID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := parseID(c.Param("budgetId")); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ValidationResponse{
				Errors: []api.FieldIssue{{Field: "budgetId", Message: "ID no válido"}},
			})
			return
		}
		c.Next()
	}
}

// ValidateBudgetExists loads the budget named in the path and attaches it to
// the request context.
func ValidateBudgetExists(budgets BudgetFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := parseID(c.Param("budgetId"))

		budget, err := budgets.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrBudgetNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
				return
			}
			slog.Error("failed to load budget", "error", err, "budget_id", id)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Hubo un error"})
			return
		}

		c.Set(ContextBudgetKey, budget)
		c.Next()
	}
}

// HasAccess rejects requests for budgets the authenticated user does not own.
// Ownership is a pure equality between the budget's owner and the
// session-resolved user.
func HasAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authmw.CurrentUser(c)
		budget, budgetOK := CurrentBudget(c)
		if !ok || !budgetOK || budget.UserID != user.ID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Acción no válida"})
			return
		}
		c.Next()
	}
}

// CurrentBudget returns the budget attached by ValidateBudgetExists.
func CurrentBudget(c *gin.Context) (*entity.Budget, bool) {
	v, ok := c.Get(ContextBudgetKey)
	if !ok {
		return nil, false
	}
	budget, ok := v.(*entity.Budget)
	return budget, ok
}
