package entity

import "time"

// Expense is a single spend recorded against a budget. It belongs to exactly
// one budget and is only reachable through a budget its caller owns.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	BudgetID  uint      `gorm:"not null;index" json:"budgetId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
