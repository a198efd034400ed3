// Package usecase implements the business logic for the budgets feature.
package usecase

import "errors"

var (
	// ErrBudgetNotFound is returned when no budget exists with the given ID.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when no expense exists with the given ID.
	ErrExpenseNotFound = errors.New("expense not found")
)
