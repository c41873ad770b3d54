package categoryService

import (
	"context"
	"testing"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	categoryRepository "github.com/ISLASKRIGA/IMony3/internal/api/category/repository"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	"github.com/ISLASKRIGA/IMony3/pkg/redis"
	"github.com/sirupsen/logrus"
)

func TestMakeCategoryID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Mascotas", want: "mascotas"},
		{name: "spaces", in: "Comer afuera", want: "comer_afuera"},
		{name: "accents", in: "Educación", want: "educacion"},
		{name: "mixed punctuation", in: "  Gym & Fitness!  ", want: "gym_fitness"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := makeCategoryID(tc.in); got != tc.want {
				t.Errorf("makeCategoryID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

type fakeCategoryStore struct {
	categories []entity.Category
	seeded     []entity.Category
}

func (f *fakeCategoryStore) CreateCategory(c context.Context, cat entity.Category) error {
	f.categories = append(f.categories, cat)
	return nil
}

func (f *fakeCategoryStore) GetCategoryByID(c context.Context, id string) (entity.Category, error) {
	for _, cat := range f.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return entity.Category{}, nil
}

func (f *fakeCategoryStore) GetCategories(c context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) UpdateCategorySelection(c context.Context, id string, selected bool) error {
	return nil
}

func (f *fakeCategoryStore) SeedCategory(c context.Context, cat entity.Category) error {
	f.seeded = append(f.seeded, cat)
	return nil
}

type fakeCategoryRepo struct {
	store *fakeCategoryStore
}

func (f *fakeCategoryRepo) NewClient(tx bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Category: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeRedis struct {
	values map[string]string
}

func (f *fakeRedis) SetSnapshot(ctx context.Context, key string, payload string, expiration time.Duration) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = payload
	return nil
}

func (f *fakeRedis) GetSnapshot(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (f *fakeRedis) DeleteSnapshot(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestGetRegistrySnapshot_FallsBackToDefaults(t *testing.T) {
	store := &fakeCategoryStore{}
	svc := NewCategoryService(logrus.New(), &fakeCategoryRepo{store: store}, &fakeRedis{})

	snapshot, err := svc.GetRegistrySnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetRegistrySnapshot: %v", err)
	}

	defaults := entity.DefaultCategories()
	if len(snapshot) != len(defaults) {
		t.Fatalf("snapshot length = %d, want %d", len(snapshot), len(defaults))
	}
	for i := range defaults {
		if snapshot[i].ID != defaults[i].ID {
			t.Errorf("snapshot[%d].ID = %q, want %q", i, snapshot[i].ID, defaults[i].ID)
		}
	}
}

func TestGetRegistrySnapshot_CachesResult(t *testing.T) {
	store := &fakeCategoryStore{categories: entity.DefaultCategories()}
	cache := &fakeRedis{}
	svc := NewCategoryService(logrus.New(), &fakeCategoryRepo{store: store}, cache)

	if _, err := svc.GetRegistrySnapshot(context.Background()); err != nil {
		t.Fatalf("GetRegistrySnapshot: %v", err)
	}
	if _, ok := cache.values[registrySnapshotKey]; !ok {
		t.Error("expected the snapshot to be cached")
	}

	// A second read must be served from the cache even if the store empties.
	store.categories = nil
	snapshot, err := svc.GetRegistrySnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetRegistrySnapshot (cached): %v", err)
	}
	if len(snapshot) != len(entity.DefaultCategories()) {
		t.Errorf("cached snapshot length = %d, want %d", len(snapshot), len(entity.DefaultCategories()))
	}
}

func categoryRequest(name string) category.CreateCategoryRequest {
	return category.CreateCategoryRequest{Name: name}
}

func TestCreateCategory_RejectsDuplicateSlug(t *testing.T) {
	store := &fakeCategoryStore{categories: entity.DefaultCategories()}
	svc := NewCategoryService(logrus.New(), &fakeCategoryRepo{store: store}, &fakeRedis{})

	if _, err := svc.CreateCategory(context.Background(), categoryRequest("Mascotas")); err == nil {
		t.Error("expected duplicate slug to be rejected")
	}

	created, err := svc.CreateCategory(context.Background(), categoryRequest("Gimnasio"))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID != "gimnasio" {
		t.Errorf("created ID = %q, want %q", created.ID, "gimnasio")
	}
	if created.Position != len(entity.DefaultCategories())+1 {
		t.Errorf("created position = %d, want %d", created.Position, len(entity.DefaultCategories())+1)
	}
	if created.Emoji == "" || created.Color == "" {
		t.Errorf("created category missing emoji or color: %+v", created)
	}
}
