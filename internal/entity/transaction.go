package entity

import (
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type TransactionMethod string

const (
	TransactionMethodVoice  TransactionMethod = "voice"
	TransactionMethodManual TransactionMethod = "manual"
)

func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

func IsValidTransactionMethod(m string) bool {
	switch TransactionMethod(m) {
	case TransactionMethodVoice, TransactionMethodManual:
		return true
	default:
		return false
	}
}

// Transaction is the persisted record; the repository assigns the ULID when
// a draft crosses the persistence boundary.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id"`
	Date        time.Time `json:"date"`
	Method      string    `json:"method"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if !IsValidTransactionMethod(t.Method) {
		return transaction.ErrInvalidMethod
	}

	if t.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	return nil
}
