package usecase

import (
	"context"

	"cashtrackr_backend/internal/feature/budgets/domain/entity"
)

// BudgetRepository abstracts the persistence layer for budgets.
// Following Go convention, interfaces are defined by the consumer (usecase), not the provider (adapters).
type BudgetRepository interface {
	// ListByUser returns the user's budgets ordered newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Budget, error)

	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by ID, or ErrBudgetNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Budget, error)

	// FindByIDWithExpenses retrieves a budget with its expenses eagerly
	// loaded, or ErrBudgetNotFound.
	FindByIDWithExpenses(ctx context.Context, id uint) (*entity.Budget, error)

	// Update persists name and amount changes.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes the budget. Owned expenses cascade at the database.
	Delete(ctx context.Context, budget *entity.Budget) error
}

// BudgetUsecase provides the budget operations. Ownership is enforced by the
// transport middleware before any of these run.
type BudgetUsecase struct {
	budgets BudgetRepository
}

// NewBudgetUsecase creates a new BudgetUsecase with the given repository.
func NewBudgetUsecase(r BudgetRepository) *BudgetUsecase {
	return &BudgetUsecase{budgets: r}
}

// ListByUser returns the authenticated user's budgets, newest first.
func (u *BudgetUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Budget, error) {
	return u.budgets.ListByUser(ctx, userID)
}

// Create stores a new budget under the given owner.
func (u *BudgetUsecase) Create(ctx context.Context, userID uint, name string, amount float64) error {
	budget := &entity.Budget{Name: name, Amount: amount, UserID: userID}
	return u.budgets.Create(ctx, budget)
}

// GetWithExpenses returns the budget with its expenses eagerly included.
func (u *BudgetUsecase) GetWithExpenses(ctx context.Context, id uint) (*entity.Budget, error) {
	return u.budgets.FindByIDWithExpenses(ctx, id)
}

// Update changes the budget's name and amount.
func (u *BudgetUsecase) Update(ctx context.Context, budget *entity.Budget, name string, amount float64) error {
	budget.Name = name
	budget.Amount = amount
	return u.budgets.Update(ctx, budget)
}

// Delete removes the budget and, through the database constraint, its expenses.
func (u *BudgetUsecase) Delete(ctx context.Context, budget *entity.Budget) error {
	return u.budgets.Delete(ctx, budget)
}
