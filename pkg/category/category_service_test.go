package category

import (
	"context"
	"strconv"
	"testing"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockCategoryRepository struct {
	categories []*entities.Category
	media      map[string]*entities.Media
	deleted    []uint
	nextID     uint
	// uniqueViolation makes writes fail the way a unique index does.
	uniqueViolation bool
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		media: map[string]*entities.Media{
			"img-beans": {Document: entities.Document{ID: 10, DocumentID: "img-beans"}, URL: "/uploads/beans.png"},
		},
		nextID: 1,
	}
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context, q *query.Query) ([]*entities.Category, int64, error) {
	return m.categories, int64(len(m.categories)), nil
}

func (m *mockCategoryRepository) GetCategory(ctx context.Context, key string, preloads []string) (*entities.Category, error) {
	for _, c := range m.categories {
		if c.DocumentID == key || strconv.Itoa(int(c.ID)) == key {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	for _, c := range m.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	if m.uniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	category.ID = m.nextID
	category.DocumentID = "cat-" + strconv.Itoa(int(m.nextID))
	m.nextID++
	m.categories = append(m.categories, category)
	return nil
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	if m.uniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	for i, c := range m.categories {
		if c.ID == category.ID {
			m.categories[i] = category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCategoryRepository) GetMedia(ctx context.Context, key string) (*entities.Media, error) {
	if media, ok := m.media[key]; ok {
		return media, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreateCategory(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())

	res, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{
		CategoryName: "Coffee", Slug: "coffee", Image: "img-beans",
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee", res.CategoryName)
	require.NotNil(t, res.Image)
	assert.Equal(t, "/uploads/beans.png", res.Image.URL)

	res, err = svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Tea", Slug: "tea"})
	require.NoError(t, err)
	assert.Nil(t, res.Image)
}

func TestCategorySlugMustBeUnique(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	coffee, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Coffee", Slug: "coffee"})
	require.NoError(t, err)
	tea, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Tea", Slug: "tea"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "More coffee", Slug: "coffee"})
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)

	_, err = svc.UpdateCategory(context.Background(), tea.DocumentID, domain.CategoryRequest{CategoryName: "Tea", Slug: "coffee"})
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)

	renamed, err := svc.UpdateCategory(context.Background(), coffee.DocumentID, domain.CategoryRequest{CategoryName: "Kopi", Slug: "coffee"})
	require.NoError(t, err)
	assert.Equal(t, "Kopi", renamed.CategoryName)

	repo.uniqueViolation = true
	_, err = svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Cocoa", Slug: "cocoa"})
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
}

func TestCategoryImageMustExist(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)

	_, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Coffee", Slug: "coffee", Image: "missing"})
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	assert.Empty(t, repo.categories)

	created, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Coffee", Slug: "coffee", Image: "img-beans"})
	require.NoError(t, err)

	cleared, err := svc.UpdateCategory(context.Background(), created.DocumentID, domain.CategoryRequest{CategoryName: "Coffee", Slug: "coffee"})
	require.NoError(t, err)
	assert.Nil(t, cleared.Image)
}

func TestDeleteCategory(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)
	created, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{CategoryName: "Coffee", Slug: "coffee"})
	require.NoError(t, err)

	_, err = svc.DeleteCategory(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	res, err := svc.DeleteCategory(context.Background(), strconv.Itoa(int(created.ID)))
	require.NoError(t, err)
	assert.Equal(t, "coffee", res.Slug)
	assert.Equal(t, []uint{created.ID}, repo.deleted)

	_, err = svc.GetCategory(context.Background(), created.DocumentID, query.Params{Page: 1, PageSize: query.DefaultPageSize})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestGetCategoriesRejectsUnknownFields(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())

	params, err := query.FromRaw("sort=price")
	require.NoError(t, err)
	_, _, err = svc.GetCategories(context.Background(), params)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	params, err = query.FromRaw("populate=image&pagination[pageSize]=5")
	require.NoError(t, err)
	_, page, err := svc.GetCategories(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 5, page.PageSize)
}
