package transactionHandler

import (
	"errors"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/ISLASKRIGA/IMony3/pkg/handlerUtil"
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.transactionService.CreateTransaction(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction created successfully",
			"id":      created.ID,
		})
	}
}

func (h *TransactionHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transactions request")

	period := ctx.Query("period", transaction.PeriodAll)

	res, err := h.transactionService.GetTransactions(c, period)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get summary request")

	period := ctx.Query("period", transaction.PeriodAll)

	res, err := h.transactionService.GetSummary(c, period)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) GetTransactionByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transaction by ID request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	tx, err := h.transactionService.GetTransactionByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction")
	}

	res := transaction.TransactionResponse{
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

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	var req transaction.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.UpdateTransaction(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction updated successfully",
		})
	}
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	if err := h.transactionService.DeleteTransaction(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction deleted successfully",
		})
	}
}
