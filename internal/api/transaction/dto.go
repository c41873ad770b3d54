package transaction

const (
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	CategoryID  string  `json:"category_id"`
	Date        string  `json:"date"`
	Method      string  `json:"method" validate:"omitempty,oneof=voice manual"`
}

type UpdateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	CategoryID  string  `json:"category_id"`
	Date        string  `json:"date"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Date        string  `json:"date"`
	Method      string  `json:"method"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}

type CategoryTotal struct {
	CategoryID string  `json:"category_id"`
	Total      float64 `json:"total"`
}

type SummaryResponse struct {
	Balance           float64         `json:"balance"`
	TotalIncome       float64         `json:"total_income"`
	TotalExpense      float64         `json:"total_expense"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category"`
}
