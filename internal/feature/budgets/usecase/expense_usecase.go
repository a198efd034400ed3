package usecase

import (
	"context"

	"cashtrackr_backend/internal/feature/budgets/domain/entity"
)

// ExpenseRepository abstracts the persistence layer for expenses.
type ExpenseRepository interface {
	// ListByBudget returns the budget's expenses ordered newest first.
	ListByBudget(ctx context.Context, budgetID uint) ([]entity.Expense, error)

	// Create persists a new expense under its budget.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID, or ErrExpenseNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Expense, error)

	// Update persists name and amount changes.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes the expense.
	Delete(ctx context.Context, expense *entity.Expense) error
}

// ExpenseUsecase provides the expense operations. The transport middleware
// has already verified budget ownership and expense scoping when these run.
type ExpenseUsecase struct {
	expenses ExpenseRepository
}

// NewExpenseUsecase creates a new ExpenseUsecase with the given repository.
func NewExpenseUsecase(r ExpenseRepository) *ExpenseUsecase {
	return &ExpenseUsecase{expenses: r}
}

// ListByBudget returns the validated budget's expenses, newest first.
func (u *ExpenseUsecase) ListByBudget(ctx context.Context, budgetID uint) ([]entity.Expense, error) {
	return u.expenses.ListByBudget(ctx, budgetID)
}

// Create stores a new expense under the validated budget.
func (u *ExpenseUsecase) Create(ctx context.Context, budgetID uint, name string, amount float64) error {
	expense := &entity.Expense{Name: name, Amount: amount, BudgetID: budgetID}
	return u.expenses.Create(ctx, expense)
}

// Update changes the expense's name and amount.
func (u *ExpenseUsecase) Update(ctx context.Context, expense *entity.Expense, name string, amount float64) error {
	expense.Name = name
	expense.Amount = amount
	return u.expenses.Update(ctx, expense)
}

// Delete removes the expense.
func (u *ExpenseUsecase) Delete(ctx context.Context, expense *entity.Expense) error {
	return u.expenses.Delete(ctx, expense)
}
