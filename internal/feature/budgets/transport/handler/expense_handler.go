package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/transport/http/dto"
	budgetmw "cashtrackr_backend/internal/feature/budgets/transport/middleware"
)

// ExpenseUsecase defines the expense operations the handler depends on.
type ExpenseUsecase interface {
	ListByBudget(ctx context.Context, budgetID uint) ([]entity.Expense, error)
	Create(ctx context.Context, budgetID uint, name string, amount float64) error
	Update(ctx context.Context, expense *entity.Expense, name string, amount float64) error
	Delete(ctx context.Context, expense *entity.Expense) error
}

// ExpenseHandler handles the HTTP requests for expense operations.
type ExpenseHandler struct {
	expenses ExpenseUsecase
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// List handles GET /api/budgets/:budgetId/expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	budget, ok := budgetmw.CurrentBudget(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
		return
	}

	expenses, err := h.expenses.ListByBudget(c.Request.Context(), budget.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Create handles POST /api/budgets/:budgetId/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	budget, ok := budgetmw.CurrentBudget(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
		return
	}

	var req dto.ExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ExpenseMessages)})
		return
	}

	if err := h.expenses.Create(c.Request.Context(), budget.ID, req.Name, req.Amount); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, "Gasto Agregado Correctamente")
}

// GetByID handles GET /api/budgets/:budgetId/expenses/:expenseId. The
// middleware chain has already loaded and scoped the expense.
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expense, ok := budgetmw.CurrentExpense(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gasto no encontrado"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateByID handles PUT /api/budgets/:budgetId/expenses/:expenseId.
func (h *ExpenseHandler) UpdateByID(c *gin.Context) {
	expense, ok := budgetmw.CurrentExpense(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gasto no encontrado"})
		return
	}

	var req dto.ExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ExpenseMessages)})
		return
	}

	if err := h.expenses.Update(c.Request.Context(), expense, req.Name, req.Amount); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, "Se actualizó correctamente")
}

// DeleteByID handles DELETE /api/budgets/:budgetId/expenses/:expenseId.
func (h *ExpenseHandler) DeleteByID(c *gin.Context) {
	expense, ok := budgetmw.CurrentExpense(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gasto no encontrado"})
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), expense); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, "Gasto Eliminado")
}
