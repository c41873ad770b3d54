package categoryHandler

import (
	categoryService "github.com/ISLASKRIGA/IMony3/internal/api/category/service"
	"github.com/ISLASKRIGA/IMony3/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")

	categories.Get("/", h.GetCategories)
	categories.Post("/", h.CreateCategory)
	categories.Patch("/:id/toggle", h.ToggleCategory)
}
