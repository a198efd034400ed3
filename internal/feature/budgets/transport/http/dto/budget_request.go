// Package dto defines data transfer objects for the budgets feature's HTTP transport layer.
package dto

// BudgetReq represents the request body for creating or updating a budget.
type BudgetReq struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// BudgetMessages maps validation failures to the user-facing messages.
var BudgetMessages = map[string]string{
	"Name":            "El nombre del presupuesto no puede ir vacio",
	"Amount.required": "La cantidad del presupuesto no puede ir vacia",
	"Amount.gt":       "El presupuesto debe ser mayor a 0",
}

// ExpenseReq represents the request body for creating or updating an expense.
type ExpenseReq struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ExpenseMessages maps validation failures to the user-facing messages.
var ExpenseMessages = map[string]string{
	"Name":            "El nombre del gasto no puede ir vacio",
	"Amount.required": "La cantidad del gasto no puede ir vacia",
	"Amount.gt":       "El gasto debe ser mayor a 0",
}
