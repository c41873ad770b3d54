package transactionService

import (
	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	transactionRepository "github.com/ISLASKRIGA/IMony3/internal/api/transaction/repository"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	"github.com/ISLASKRIGA/IMony3/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	CreateFromDraft(ctx context.Context, draft entity.Transaction) (entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, period string) (transaction.TransactionListResponse, error)
	GetSummary(ctx context.Context, period string) (transaction.SummaryResponse, error)
	UpdateTransaction(ctx context.Context, id string, req transaction.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
	}
}
