package transactionHandler

import (
	transactionService "github.com/ISLASKRIGA/IMony3/internal/api/transaction/service"
	"github.com/ISLASKRIGA/IMony3/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions")

	transactions.Post("/", h.CreateTransaction)
	transactions.Get("/", h.GetTransactions)
	transactions.Get("/summary", h.GetSummary)
	transactions.Get("/:id", h.GetTransactionByID)
	transactions.Put("/:id", h.UpdateTransaction)
	transactions.Delete("/:id", h.DeleteTransaction)
}
