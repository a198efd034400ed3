package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

// ContextExpenseKey is the gin context key holding the expense loaded from the path.
const ContextExpenseKey = "expense"

// ExpenseFinder resolves an expense ID to a record.
type ExpenseFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Expense, error)
}

// ValidateExpenseID rejects requests whose expenseId path parameter is not a
// positive integer.
func ValidateExpenseID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := parseID(c.Param("expenseId")); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ValidationResponse{
				Errors: []api.FieldIssue{{Field: "expenseId", Message: "ID no válido"}},
			})
			return
		}
		c.Next()
	}
}

// ValidateExpenseExists loads the expense named in the path and attaches it
// to the request context.
func ValidateExpenseExists(expenses ExpenseFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := parseID(c.Param("expenseId"))

		expense, err := expenses.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, usecase.ErrExpenseNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: "Gasto no encontrado"})
				return
			}
			slog.Error("failed to load expense", "error", err, "expense_id", id)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Hubo un error"})
			return
		}

		c.Set(ContextExpenseKey, expense)
		c.Next()
	}
}

// BelongsToBudget rejects an expense whose parent budget differs from the
// budget named in the URL. The expense may exist and even be owned by the
// caller through another budget; crossing budgets is still forbidden, with a
// status distinct from not-found.
func BelongsToBudget() gin.HandlerFunc {
	return func(c *gin.Context) {
		budget, budgetOK := CurrentBudget(c)
		expense, expenseOK := CurrentExpense(c)
		if !budgetOK || !expenseOK || expense.BudgetID != budget.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Acción no válida"})
			return
		}
		c.Next()
	}
}

// CurrentExpense returns the expense attached by ValidateExpenseExists.
func CurrentExpense(c *gin.Context) (*entity.Expense, bool) {
	v, ok := c.Get(ContextExpenseKey)
	if !ok {
		return nil, false
	}
	expense, ok := v.(*entity.Expense)
	return expense, ok
}
