package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells income and expense apart. Transactions and categories share it.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single dated money movement. Amount is always a
// non-negative magnitude; the sign is implied by Kind.
type Transaction struct {
	Base
	Kind        Kind            `gorm:"type:varchar(16);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:varchar(64);not null" json:"amount"`
	Category    string          `gorm:"not null;index" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
