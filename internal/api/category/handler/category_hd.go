package categoryHandler

import (
	"errors"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/ISLASKRIGA/IMony3/pkg/handlerUtil"
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CategoryHandler) GetCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get categories request")

	categories, err := h.categoryService.GetCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_categories")
	}

	res := category.CategoryListResponse{
		Categories: make([]category.CategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		res.Categories = append(res.Categories, makeCategoryResponse(cat))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *CategoryHandler) CreateCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create category request")

	var req category.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.categoryService.CreateCategory(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeCategoryResponse(created))
	}
}

func (h *CategoryHandler) ToggleCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing toggle category request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("category ID is required"), ctx.Path())
	}

	toggled, err := h.categoryService.ToggleCategory(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "toggle_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeCategoryResponse(toggled))
	}
}

func makeCategoryResponse(cat entity.Category) category.CategoryResponse {
	return category.CategoryResponse{
		ID:       cat.ID,
		Name:     cat.Name,
		Emoji:    cat.Emoji,
		Color:    cat.Color,
		Selected: cat.Selected,
		Priority: cat.Priority,
		Keywords: cat.Keywords,
		Position: cat.Position,
	}
}
