package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

// expenseGorm is the PostgreSQL implementation of the ExpenseRepository interface.
type expenseGorm struct {
	db *gorm.DB
}

// Compile-time check that expenseGorm implements ExpenseRepository.
var _ usecase.ExpenseRepository = (*expenseGorm)(nil)

// NewExpenseRepository creates an expenseGorm repository on the given connection.
func NewExpenseRepository(db *gorm.DB) *expenseGorm {
	return &expenseGorm{db: db}
}

// ListByBudget returns the budget's expenses ordered newest first.
func (r *expenseGorm) ListByBudget(ctx context.Context, budgetID uint) ([]entity.Expense, error) {
	var expenses []entity.Expense
	if err := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Create inserts the expense.
func (r *expenseGorm) Create(ctx context.Context, e *entity.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByID retrieves an expense by ID.
func (r *expenseGorm) FindByID(ctx context.Context, id uint) (*entity.Expense, error) {
	var e entity.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update saves the expense's current field values.
func (r *expenseGorm) Update(ctx context.Context, e *entity.Expense) error {
	return r.db.WithContext(ctx).
		Model(e).
		Updates(map[string]interface{}{"name": e.Name, "amount": e.Amount}).Error
}

// Delete removes the expense.
func (r *expenseGorm) Delete(ctx context.Context, e *entity.Expense) error {
	return r.db.WithContext(ctx).Delete(e).Error
}
