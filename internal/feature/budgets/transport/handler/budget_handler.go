// Package handler provides the HTTP handlers for the budgets feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	authmw "cashtrackr_backend/internal/feature/auth/transport/middleware"
	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/transport/http/dto"
	budgetmw "cashtrackr_backend/internal/feature/budgets/transport/middleware"
)

// BudgetUsecase defines the budget operations the handler depends on.
type BudgetUsecase interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Budget, error)
	Create(ctx context.Context, userID uint, name string, amount float64) error
	GetWithExpenses(ctx context.Context, id uint) (*entity.Budget, error)
	Update(ctx context.Context, budget *entity.Budget, name string, amount float64) error
	Delete(ctx context.Context, budget *entity.Budget) error
}

// BudgetHandler handles the HTTP requests for budget operations.
type BudgetHandler struct {
	budgets BudgetUsecase
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets BudgetUsecase) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// handleError converts an unexpected failure into a generic 500.
func handleError(c *gin.Context, err error) {
	slog.Error("unexpected error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Hubo un error"})
}

// List handles GET /api/budgets, returning the caller's budgets newest first.
func (h *BudgetHandler) List(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}

	budgets, err := h.budgets.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// Create handles POST /api/budgets.
func (h *BudgetHandler) Create(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}

	var req dto.BudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.BudgetMessages)})
		return
	}

	if err := h.budgets.Create(c.Request.Context(), user.ID, req.Name, req.Amount); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, "Presupuesto Creado Correctamente")
}

// GetByID handles GET /api/budgets/:budgetId, returning the budget with its
// expenses eagerly included.
func (h *BudgetHandler) GetByID(c *gin.Context) {
	budget, ok := budgetmw.CurrentBudget(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
		return
	}

	full, err := h.budgets.GetWithExpenses(c.Request.Context(), budget.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// UpdateByID handles PUT /api/budgets/:budgetId.
func (h *BudgetHandler) UpdateByID(c *gin.Context) {
	budget, ok := budgetmw.CurrentBudget(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
		return
	}

	var req dto.BudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.BudgetMessages)})
		return
	}

	if err := h.budgets.Update(c.Request.Context(), budget, req.Name, req.Amount); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, "Presupuesto actualizado correctamente")
}

// DeleteByID handles DELETE /api/budgets/:budgetId.
func (h *BudgetHandler) DeleteByID(c *gin.Context) {
	budget, ok := budgetmw.CurrentBudget(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Presupuesto no encontrado"})
		return
	}

	if err := h.budgets.Delete(c.Request.Context(), budget); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, "Presupuesto eliminado")
}
