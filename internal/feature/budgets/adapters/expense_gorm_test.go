package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

func TestExpenseGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	budgets := NewBudgetRepository(db)
	repo := NewExpenseRepository(db)

	budget := &entity.Budget{Name: "Vacaciones", Amount: 500, UserID: 1}
	require.NoError(t, budgets.Create(context.Background(), budget))

	expense := &entity.Expense{Name: "Hotel", Amount: 200, BudgetID: budget.ID}
	err := repo.Create(context.Background(), expense)

	require.NoError(t, err, "failed to create expense")
	assert.NotZero(t, expense.ID, "ID is not set")

	found, err := repo.FindByID(context.Background(), expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hotel", found.Name)
	assert.Equal(t, 200.0, found.Amount)
	assert.Equal(t, budget.ID, found.BudgetID)
}

func TestExpenseGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)

	assert.ErrorIs(t, err, usecase.ErrExpenseNotFound)
}

func TestExpenseGorm_ListByBudget(t *testing.T) {
	db := setupTestDB(t)
	budgets := NewBudgetRepository(db)
	repo := NewExpenseRepository(db)

	budget := &entity.Budget{Name: "Vacaciones", Amount: 500, UserID: 1}
	require.NoError(t, budgets.Create(context.Background(), budget))
	other := &entity.Budget{Name: "Comida", Amount: 300, UserID: 1}
	require.NoError(t, budgets.Create(context.Background(), other))

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"Hotel", "Vuelo", "Tours"} {
		e := &entity.Expense{Name: name, Amount: 100, BudgetID: budget.ID}
		require.NoError(t, repo.Create(context.Background(), e))
		require.NoError(t, db.Model(e).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}
	require.NoError(t, repo.Create(context.Background(), &entity.Expense{Name: "Tacos", Amount: 20, BudgetID: other.ID}))

	expenses, err := repo.ListByBudget(context.Background(), budget.ID)

	require.NoError(t, err)
	require.Len(t, expenses, 3, "expenses of other budgets must not appear")
	assert.Equal(t, "Tours", expenses[0].Name, "newest expense must come first")
}

func TestExpenseGorm_Update(t *testing.T) {
	db := setupTestDB(t)
	budgets := NewBudgetRepository(db)
	repo := NewExpenseRepository(db)

	budget := &entity.Budget{Name: "Vacaciones", Amount: 500, UserID: 1}
	require.NoError(t, budgets.Create(context.Background(), budget))
	expense := &entity.Expense{Name: "Hotel", Amount: 200, BudgetID: budget.ID}
	require.NoError(t, repo.Create(context.Background(), expense))

	expense.Name = "Hotel Centro"
	expense.Amount = 250
	require.NoError(t, repo.Update(context.Background(), expense))

	found, err := repo.FindByID(context.Background(), expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Centro", found.Name)
	assert.Equal(t, 250.0, found.Amount)
	assert.Equal(t, budget.ID, found.BudgetID, "owning budget must not change on update")
}

func TestExpenseGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	budgets := NewBudgetRepository(db)
	repo := NewExpenseRepository(db)

	budget := &entity.Budget{Name: "Vacaciones", Amount: 500, UserID: 1}
	require.NoError(t, budgets.Create(context.Background(), budget))
	expense := &entity.Expense{Name: "Hotel", Amount: 200, BudgetID: budget.ID}
	require.NoError(t, repo.Create(context.Background(), expense))

	require.NoError(t, repo.Delete(context.Background(), expense))

	_, err := repo.FindByID(context.Background(), expense.ID)
	assert.ErrorIs(t, err, usecase.ErrExpenseNotFound)
}
