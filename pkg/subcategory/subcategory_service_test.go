package subcategory

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

type mockSubcategoryRepository struct {
	subcategories   []*entities.Subcategory
	categories      map[string]*entities.Category
	lastQuery       *query.Query
	nextID          uint
	uniqueViolation bool
}

func newMockSubcategoryRepository() *mockSubcategoryRepository {
	return &mockSubcategoryRepository{
		categories: map[string]*entities.Category{
			"coffee": {Document: entities.Document{ID: 1, DocumentID: "coffee"}, CategoryName: "Coffee", Slug: "coffee"},
			"tea":    {Document: entities.Document{ID: 2, DocumentID: "tea"}, CategoryName: "Tea", Slug: "tea"},
		},
		nextID: 1,
	}
}

func (m *mockSubcategoryRepository) GetSubcategories(ctx context.Context, q *query.Query) ([]*entities.Subcategory, int64, error) {
	m.lastQuery = q
	return m.subcategories, int64(len(m.subcategories)), nil
}

func (m *mockSubcategoryRepository) GetSubcategory(ctx context.Context, key string, preloads []string) (*entities.Subcategory, error) {
	for _, s := range m.subcategories {
		if s.DocumentID == key || strconv.Itoa(int(s.ID)) == key {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubcategoryRepository) GetCategory(ctx context.Context, key string) (*entities.Category, error) {
	if c, ok := m.categories[key]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubcategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	for _, s := range m.subcategories {
		if s.Slug == slug && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubcategoryRepository) CreateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error {
	if m.uniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	subcategory.ID = m.nextID
	subcategory.DocumentID = "sub-" + strconv.Itoa(int(m.nextID))
	m.nextID++
	m.subcategories = append(m.subcategories, subcategory)
	return nil
}

func (m *mockSubcategoryRepository) UpdateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error {
	for i, s := range m.subcategories {
		if s.ID == subcategory.ID {
			m.subcategories[i] = subcategory
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSubcategoryRepository) DeleteSubcategory(ctx context.Context, id uint) error {
	for i, s := range m.subcategories {
		if s.ID == id {
			m.subcategories = append(m.subcategories[:i], m.subcategories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func arabica() domain.SubcategoryRequest {
	return domain.SubcategoryRequest{Name: "Arabica", Slug: "arabica", Icon: "bean", Order: 1, Category: "coffee"}
}

func TestCreateSubcategory(t *testing.T) {
	svc := NewSubcategoryService(newMockSubcategoryRepository())

	res, err := svc.CreateSubcategory(context.Background(), arabica())
	require.NoError(t, err)
	assert.Equal(t, "Arabica", res.Name)
	assert.Equal(t, 1, res.Order)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.Category)
	assert.Equal(t, "coffee", res.Category.Slug)

	inactive := false
	req := arabica()
	req.Slug = "robusta"
	req.IsActive = &inactive
	res, err = svc.CreateSubcategory(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.IsActive)
}

func TestSubcategoryCategoryMustExist(t *testing.T) {
	repo := newMockSubcategoryRepository()
	svc := NewSubcategoryService(repo)

	req := arabica()
	req.Category = "cocoa"
	_, err := svc.CreateSubcategory(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, repo.subcategories)

	created, err := svc.CreateSubcategory(context.Background(), arabica())
	require.NoError(t, err)

	_, err = svc.UpdateSubcategory(context.Background(), created.DocumentID, req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	req.Category = "tea"
	moved, err := svc.UpdateSubcategory(context.Background(), created.DocumentID, req)
	require.NoError(t, err)
	assert.Equal(t, "tea", moved.Category.Slug)
}

func TestSubcategorySlugMustBeUnique(t *testing.T) {
	repo := newMockSubcategoryRepository()
	svc := NewSubcategoryService(repo)

	first, err := svc.CreateSubcategory(context.Background(), arabica())
	require.NoError(t, err)

	_, err = svc.CreateSubcategory(context.Background(), arabica())
	assert.ErrorIs(t, err, domain.ErrSubcategorySlugTaken)

	req := arabica()
	req.Name = "Arabica Gayo"
	renamed, err := svc.UpdateSubcategory(context.Background(), first.DocumentID, req)
	require.NoError(t, err)
	assert.Equal(t, "Arabica Gayo", renamed.Name)

	repo.uniqueViolation = true
	req.Slug = "liberica"
	_, err = svc.CreateSubcategory(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrSubcategorySlugTaken)
}

func TestDeleteSubcategory(t *testing.T) {
	svc := NewSubcategoryService(newMockSubcategoryRepository())
	created, err := svc.CreateSubcategory(context.Background(), arabica())
	require.NoError(t, err)

	_, err = svc.DeleteSubcategory(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSubcategoryNotFound)

	_, err = svc.DeleteSubcategory(context.Background(), created.DocumentID)
	require.NoError(t, err)

	_, err = svc.GetSubcategory(context.Background(), created.DocumentID, query.Params{Page: 1, PageSize: query.DefaultPageSize})
	assert.ErrorIs(t, err, domain.ErrSubcategoryNotFound)
}

func TestGetSubcategoriesByCategory(t *testing.T) {
	repo := newMockSubcategoryRepository()
	svc := NewSubcategoryService(repo)

	params, err := query.FromRaw("filters[category][slug][$eq]=coffee&sort=order:asc&populate=category")
	require.NoError(t, err)
	_, _, err = svc.GetSubcategories(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, repo.lastQuery)
	assert.Contains(t, repo.lastQuery.Preloads, "Category")

	params, err = query.FromRaw("filters[category][name][$eq]=coffee")
	require.NoError(t, err)
	_, _, err = svc.GetSubcategories(context.Background(), params)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}
