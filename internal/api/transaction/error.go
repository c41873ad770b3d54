package transaction

import "github.com/ISLASKRIGA/IMony3/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidMethod          = response.NewError(400, "invalid transaction method")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidPeriod          = response.NewError(400, "invalid period filter")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
)
