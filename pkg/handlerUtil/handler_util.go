package handlerUtil

import (
	"errors"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	"github.com/ISLASKRIGA/IMony3/internal/api/voice"
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"github.com/ISLASKRIGA/IMony3/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Transaction domain errors
	if errors.Is(err, transaction.ErrTransactionNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Transaction not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
			"code":  "TRANSACTION_NOT_FOUND",
		})
	}

	if errors.Is(err, transaction.ErrInvalidPeriod) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid period filter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid period filter, expected month, year or all",
			"code":  "INVALID_PERIOD",
		})
	}

	// Category domain errors
	if errors.Is(err, category.ErrCategoryNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Category not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
			"code":  "CATEGORY_NOT_FOUND",
		})
	}

	if errors.Is(err, category.ErrCategoryAlreadyExists) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Category already exists")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category already exists",
			"code":  "CATEGORY_ALREADY_EXISTS",
		})
	}

	// Voice domain errors
	if errors.Is(err, voice.ErrEmptyTranscript) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Empty transcript")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Transcript is empty",
			"code":  "EMPTY_TRANSCRIPT",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
