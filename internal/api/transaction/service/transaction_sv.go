package transactionService

import (
	"sort"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid date format, using current date")
		} else {
			date = parsed
		}
	}

	method := req.Method
	if method == "" {
		method = string(entity.TransactionMethodManual)
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:          ULID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        date,
		Method:      method,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transaction.CreateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return tx, nil
}

func (s *transactionService) CreateFromDraft(ctx context.Context, draft entity.Transaction) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	draft.ID = ULID
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()

	if err := draft.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid draft transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transaction.CreateTransaction(ctx, draft); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist draft transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return draft, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tx, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	return tx, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, period string) (transaction.TransactionListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transactions, err := s.getTransactionsForPeriod(ctx, period)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to get transactions")
		return transaction.TransactionListResponse{}, err
	}

	res := transaction.TransactionListResponse{
		Transactions: make([]transaction.TransactionResponse, 0, len(transactions)),
	}

	for _, tx := range transactions {
		if tx.Type == string(entity.TransactionTypeIncome) {
			res.TotalIncome += tx.Amount
		} else {
			res.TotalExpense += tx.Amount
		}
		res.Transactions = append(res.Transactions, makeTransactionResponse(tx))
	}

	res.Balance = res.TotalIncome - res.TotalExpense

	return res, nil
}

func (s *transactionService) GetSummary(ctx context.Context, period string) (transaction.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transactions, err := s.getTransactionsForPeriod(ctx, period)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to get transactions for summary")
		return transaction.SummaryResponse{}, err
	}

	var res transaction.SummaryResponse
	expenseByCategory := make(map[string]float64)

	for _, tx := range transactions {
		if tx.Type == string(entity.TransactionTypeIncome) {
			res.TotalIncome += tx.Amount
			continue
		}

		res.TotalExpense += tx.Amount
		if tx.CategoryID != "" {
			expenseByCategory[tx.CategoryID] += tx.Amount
		}
	}

	res.Balance = res.TotalIncome - res.TotalExpense

	res.ExpenseByCategory = make([]transaction.CategoryTotal, 0, len(expenseByCategory))
	for categoryID, total := range expenseByCategory {
		res.ExpenseByCategory = append(res.ExpenseByCategory, transaction.CategoryTotal{
			CategoryID: categoryID,
			Total:      total,
		})
	}

	sort.Slice(res.ExpenseByCategory, func(i, j int) bool {
		if res.ExpenseByCategory[i].Total != res.ExpenseByCategory[j].Total {
			return res.ExpenseByCategory[i].Total > res.ExpenseByCategory[j].Total
		}
		return res.ExpenseByCategory[i].CategoryID < res.ExpenseByCategory[j].CategoryID
	})

	return res, nil
}

func (s *transactionService) getTransactionsForPeriod(ctx context.Context, period string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	now := time.Now()

	switch period {
	case "", transaction.PeriodAll:
		return repo.Transaction.GetTransactions(ctx)
	case transaction.PeriodMonth:
		return repo.Transaction.GetTransactionsByPeriod(ctx, now.Year(), int(now.Month()))
	case transaction.PeriodYear:
		return repo.Transaction.GetTransactionsByPeriod(ctx, now.Year(), 0)
	default:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"period":     period,
		}).Warn("Invalid period filter")
		return nil, transaction.ErrInvalidPeriod
	}
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id string, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	date := existing.Date
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid date format, keeping existing date")
		} else {
			date = parsed
		}
	}

	tx := entity.Transaction{
		ID:          id,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        date,
		Method:      existing.Method,
		UpdatedAt:   time.Now(),
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := repo.Transaction.UpdateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return transaction.ErrUpdateTransaction
	}

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := repo.Transaction.GetTransactionByID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

func makeTransactionResponse(tx entity.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		Date:        tx.Date.Format("2006-01-02"),
		Method:      tx.Method,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
	}
}
