package product

import (
	"context"
	"strings"
	"testing"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockProductRepository struct {
	products      []*entities.Product
	categories    map[string]*entities.Category
	subcategories map[string]*entities.Subcategory
	media         map[string]*entities.Media
	lastQuery     *query.Query
	nextID        uint
}

func newMockProductRepository() *mockProductRepository {
	coffeeID, teaID := uint(1), uint(2)
	return &mockProductRepository{
		categories: map[string]*entities.Category{
			"coffee": {Document: entities.Document{ID: coffeeID, DocumentID: "coffee"}, CategoryName: "Coffee", Slug: "coffee"},
			"tea":    {Document: entities.Document{ID: teaID, DocumentID: "tea"}, CategoryName: "Tea", Slug: "tea"},
		},
		subcategories: map[string]*entities.Subcategory{
			"arabica": {Document: entities.Document{ID: 5, DocumentID: "arabica"}, Name: "Arabica", CategoryID: &coffeeID},
		},
		media: map[string]*entities.Media{
			"img-s3":    {Document: entities.Document{ID: 10, DocumentID: "img-s3"}, Provider: entities.MediaProviderS3, URL: "https://bucket.s3.ap-southeast-1.amazonaws.com/products/bean.png"},
			"img-local": {Document: entities.Document{ID: 11, DocumentID: "img-local"}, Provider: entities.MediaProviderLocal, URL: "/uploads/bean.png"},
		},
		nextID: 1,
	}
}

func (m *mockProductRepository) GetProducts(ctx context.Context, q *query.Query) ([]*entities.Product, int64, error) {
	m.lastQuery = q
	return m.products, int64(len(m.products)), nil
}

func (m *mockProductRepository) GetProduct(ctx context.Context, key string, preloads []string) (*entities.Product, error) {
	for _, p := range m.products {
		if p.DocumentID == key {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	for _, p := range m.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProductRepository) GetCategory(ctx context.Context, key string) (*entities.Category, error) {
	if c, ok := m.categories[key]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) GetSubcategory(ctx context.Context, key string) (*entities.Subcategory, error) {
	if s, ok := m.subcategories[key]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) GetMedia(ctx context.Context, keys []string) ([]*entities.Media, error) {
	res := make([]*entities.Media, 0, len(keys))
	for _, k := range keys {
		media, ok := m.media[k]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		res = append(res, media)
	}
	return res, nil
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	product.ID = m.nextID
	product.DocumentID = "doc-" + product.Slug
	m.nextID++
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, product *entities.Product) error {
	for i, p := range m.products {
		if p.ID == product.ID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) DeleteFile(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.ap-southeast-1.amazonaws.com/" + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.ap-southeast-1.amazonaws.com/")
}

func (f *fakeStorage) Enabled() bool { return true }

func productRequest(slug string) domain.ProductRequest {
	return domain.ProductRequest{
		ProductName: "House Blend",
		Slug:        slug,
		Price:       12.5,
		Stock:       3,
		Category:    "coffee",
		Subcategory: "arabica",
		ImageIDs:    []string{"img-s3", "img-local"},
	}
}

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newMockProductRepository(), &fakeStorage{})

	res, err := svc.CreateProduct(context.Background(), productRequest("house-blend"))
	require.NoError(t, err)
	assert.True(t, res.IsActive)
	assert.Equal(t, "coffee", res.Category.Slug)
	assert.Equal(t, "Arabica", res.Subcategory.Name)
	assert.Len(t, res.Images, 2)

	_, err = svc.CreateProduct(context.Background(), productRequest("house-blend"))
	assert.ErrorIs(t, err, domain.ErrProductSlugTaken)
}

func TestCreateProductRejectsBadReferences(t *testing.T) {
	svc := NewProductService(newMockProductRepository(), &fakeStorage{})

	req := productRequest("a")
	req.Category = "juice"
	_, err := svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	req = productRequest("b")
	req.Category = "tea"
	_, err = svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidProductData)

	req = productRequest("c")
	req.ImageIDs = []string{"img-missing"}
	_, err = svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}

func TestDeleteProductRemovesBucketObjects(t *testing.T) {
	store := &fakeStorage{}
	svc := NewProductService(newMockProductRepository(), store)

	created, err := svc.CreateProduct(context.Background(), productRequest("house-blend"))
	require.NoError(t, err)

	_, err = svc.DeleteProduct(context.Background(), created.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"products/bean.png"}, store.deleted)

	_, err = svc.DeleteProduct(context.Background(), created.DocumentID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductsBuildsQuery(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewProductService(repo, &fakeStorage{})

	params, err := query.FromRaw("filters[category][slug][$eq]=coffee&populate=*&pagination[pageSize]=2")
	require.NoError(t, err)

	_, pagination, err := svc.GetProducts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, []string{"Category", "Category.Image", "Images", "Subcategory"}, repo.lastQuery.Preloads)
	assert.Equal(t, 2, pagination.PageSize)

	params, err = query.FromRaw("filters[password][$eq]=x")
	require.NoError(t, err)
	_, _, err = svc.GetProducts(context.Background(), params)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}
