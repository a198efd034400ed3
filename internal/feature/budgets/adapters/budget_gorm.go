// Package adapters provides the repository implementations for the budgets feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

// budgetGorm is the PostgreSQL implementation of the BudgetRepository interface.
type budgetGorm struct {
	db *gorm.DB
}

// Compile-time check that budgetGorm implements BudgetRepository.
var _ usecase.BudgetRepository = (*budgetGorm)(nil)

// NewBudgetRepository creates a budgetGorm repository on the given connection.
func NewBudgetRepository(db *gorm.DB) *budgetGorm {
	return &budgetGorm{db: db}
}

// ListByUser returns the user's budgets ordered newest first.
func (r *budgetGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Budget, error) {
	var budgets []entity.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Create inserts the budget.
func (r *budgetGorm) Create(ctx context.Context, b *entity.Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindByID retrieves a budget by ID.
func (r *budgetGorm) FindByID(ctx context.Context, id uint) (*entity.Budget, error) {
	var b entity.Budget
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByIDWithExpenses retrieves a budget with its expenses preloaded.
func (r *budgetGorm) FindByIDWithExpenses(ctx context.Context, id uint) (*entity.Budget, error) {
	var b entity.Budget
	if err := r.db.WithContext(ctx).
		Preload("Expenses").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Update saves the budget's current field values.
func (r *budgetGorm) Update(ctx context.Context, b *entity.Budget) error {
	return r.db.WithContext(ctx).
		Model(b).
		Updates(map[string]interface{}{"name": b.Name, "amount": b.Amount}).Error
}

// Delete removes the budget. The expenses foreign key carries
// ON DELETE CASCADE, so owned expenses go with it.
func (r *budgetGorm) Delete(ctx context.Context, b *entity.Budget) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
