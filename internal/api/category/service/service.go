package categoryService

import (
	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	categoryRepository "github.com/ISLASKRIGA/IMony3/internal/api/category/repository"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	"github.com/ISLASKRIGA/IMony3/pkg/nlp"
	"github.com/ISLASKRIGA/IMony3/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	SeedDefaultCategories(ctx context.Context) error
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
	ToggleCategory(ctx context.Context, id string) (entity.Category, error)
	GetRegistrySnapshot(ctx context.Context) ([]nlp.Category, error)
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	redis              redis.IRedis
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, redis redis.IRedis) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		redis:              redis,
	}
}
