package categoryService

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/ISLASKRIGA/IMony3/pkg/nlp"
	"github.com/ISLASKRIGA/IMony3/pkg/redis"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	registrySnapshotKey = "categories:registry_snapshot"
	registrySnapshotTTL = 10 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

func (s *categoryService) SeedDefaultCategories(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	for _, cat := range entity.DefaultCategories() {
		if err := repo.Category.SeedCategory(ctx, cat); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"category":   cat.ID,
				"error":      err.Error(),
			}).Error("Failed to seed category")
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit category seed")
		return err
	}

	s.invalidateSnapshot(ctx, requestID)

	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	existing, err := repo.Category.GetCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get existing categories")
		return entity.Category{}, err
	}

	id := makeCategoryID(req.Name)
	for _, cat := range existing {
		if cat.ID == id {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Category already exists")
			return entity.Category{}, category.ErrCategoryAlreadyExists
		}
	}

	cat := entity.Category{
		ID:       id,
		Name:     req.Name,
		Emoji:    entity.NewCategoryEmojis[rand.Intn(len(entity.NewCategoryEmojis))],
		Color:    entity.NewCategoryColors[rand.Intn(len(entity.NewCategoryColors))],
		Selected: true,
		Priority: 1.0,
		Keywords: req.Keywords,
		Position: len(existing) + 1,
	}

	if err := repo.Category.CreateCategory(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return entity.Category{}, category.ErrCreateCategory
	}

	s.invalidateSnapshot(ctx, requestID)

	return cat, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Category.GetCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) ToggleCategory(ctx context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	cat, err := repo.Category.GetCategoryByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get category")
		return entity.Category{}, err
	}

	cat.Selected = !cat.Selected

	if err := repo.Category.UpdateCategorySelection(ctx, id, cat.Selected); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to toggle category selection")
		return entity.Category{}, category.ErrUpdateCategory
	}

	s.invalidateSnapshot(ctx, requestID)

	return cat, nil
}

// GetRegistrySnapshot serves the extraction pipeline. The snapshot is cached
// in Redis because every transcript request needs the full keyword tables.
func (s *categoryService) GetRegistrySnapshot(ctx context.Context) ([]nlp.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.redis.GetSnapshot(ctx, registrySnapshotKey)
	if err == nil && cached != "" {
		var snapshot []nlp.Category
		if err := json.UnmarshalFromString(cached, &snapshot); err == nil && len(snapshot) > 0 {
			return snapshot, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Cached registry snapshot is corrupt, rebuilding")
	} else if err != nil && !errors.Is(err, redis.Nil) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to read registry snapshot cache")
	}

	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		categories = entity.DefaultCategories()
	}

	snapshot := entity.Snapshot(categories)

	payload, err := json.MarshalToString(snapshot)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to marshal registry snapshot")
		return snapshot, nil
	}

	if err := s.redis.SetSnapshot(ctx, registrySnapshotKey, payload, registrySnapshotTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache registry snapshot")
	}

	return snapshot, nil
}

func (s *categoryService) invalidateSnapshot(ctx context.Context, requestID string) {
	if err := s.redis.DeleteSnapshot(ctx, registrySnapshotKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate registry snapshot cache")
	}
}

func makeCategoryID(name string) string {
	slug := nlp.FoldAccents(strings.ToLower(strings.TrimSpace(name)))
	slug = slugInvalidChars.ReplaceAllString(slug, "_")
	return strings.Trim(slug, "_")
}
