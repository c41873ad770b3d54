package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "01HZX0000000000000000000",
		Type:        string(TransactionTypeExpense),
		Amount:      150,
		Description: "Gasolina",
		CategoryID:  "transporte",
		Date:        time.Now(),
		Method:      string(TransactionMethodVoice),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(tx *Transaction) {},
			wantErr: nil,
		},
		{
			name:    "bad type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: transaction.ErrInvalidTransactionType,
		},
		{
			name:    "bad method",
			mutate:  func(tx *Transaction) { tx.Method = "sms" },
			wantErr: transaction.ErrInvalidMethod,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = 0 },
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -50 },
			wantErr: transaction.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)

			err := tx.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
