// Package entity defines the domain entities for the budgets feature.
package entity

import "time"

// Budget is a spending plan owned by exactly one user. Only the owner may
// read or mutate it; deleting a budget cascades to its expenses.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Expenses []Expense `gorm:"constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}
