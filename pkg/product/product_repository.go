package product

import (
	"context"

	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"gorm.io/gorm"
)

var Schema = query.Schema{
	Table: "products",
	Fields: map[string]query.Field{
		"id":          {Column: "id", Kind: query.Int},
		"documentId":  {Column: "document_id"},
		"productName": {Column: "product_name"},
		"slug":        {Column: "slug"},
		"description": {Column: "description"},
		"isActive":    {Column: "is_active", Kind: query.Bool},
		"isFeatured":  {Column: "is_featured", Kind: query.Bool},
		"price":       {Column: "price", Kind: query.Float},
		"stock":       {Column: "stock", Kind: query.Int},
		"taste":       {Column: "taste"},
		"origin":      {Column: "origin"},
		"createdAt":   {Column: "created_at", Kind: query.Time},
		"updatedAt":   {Column: "updated_at", Kind: query.Time},
	},
	Relations: map[string]query.Relation{
		"category": {
			Table:      "categories",
			ForeignKey: "category_id",
			Fields: map[string]query.Field{
				"id":           {Column: "id", Kind: query.Int},
				"documentId":   {Column: "document_id"},
				"slug":         {Column: "slug"},
				"categoryName": {Column: "category_name"},
			},
		},
		"subcategory": {
			Table:      "subcategories",
			ForeignKey: "subcategory_id",
			Fields: map[string]query.Field{
				"id":         {Column: "id", Kind: query.Int},
				"documentId": {Column: "document_id"},
				"slug":       {Column: "slug"},
				"name":       {Column: "name"},
			},
		},
	},
	Populate: map[string][]string{
		"images":      {"Images"},
		"category":    {"Category", "Category.Image"},
		"subcategory": {"Subcategory"},
	},
	DefaultSort: []query.SortField{{Field: "createdAt", Desc: true}},
}

type (
	ProductRepository interface {
		GetProducts(ctx context.Context, q *query.Query) ([]*entities.Product, int64, error)
		GetProduct(ctx context.Context, key string, preloads []string) (*entities.Product, error)
		SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
		GetCategory(ctx context.Context, key string) (*entities.Category, error)
		GetSubcategory(ctx context.Context, key string) (*entities.Subcategory, error)
		GetMedia(ctx context.Context, keys []string) ([]*entities.Media, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, product *entities.Product) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProducts(ctx context.Context, q *query.Query) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Product{}).Scopes(q.Filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	db := query.Preload(r.db.WithContext(ctx), q.Preloads)
	if err := db.Scopes(q.Filter, q.Order, q.Paginate).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) GetProduct(ctx context.Context, key string, preloads []string) (*entities.Product, error) {
	var product entities.Product
	db := query.Preload(r.db.WithContext(ctx), preloads)
	if err := db.Scopes(query.ByKey("products", key)).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) GetCategory(ctx context.Context, key string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("categories", key)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *productRepository) GetSubcategory(ctx context.Context, key string) (*entities.Subcategory, error) {
	var subcategory entities.Subcategory
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("subcategories", key)).First(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *productRepository) GetMedia(ctx context.Context, keys []string) ([]*entities.Media, error) {
	media := make([]*entities.Media, 0, len(keys))
	for _, key := range keys {
		var m entities.Media
		if err := r.db.WithContext(ctx).Scopes(query.ByKey("media", key)).First(&m).Error; err != nil {
			return nil, err
		}
		media = append(media, &m)
	}
	return media, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Omit("Category", "Subcategory", "Reviews", "Images.*").Create(product).Error
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Category", "Subcategory", "Reviews", "Images").Save(product).Error; err != nil {
			return err
		}
		return tx.Model(product).Association("Images").Replace(product.Images)
	})
}

func (r *productRepository) DeleteProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(product).Association("Images").Clear(); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		for _, img := range product.Images {
			if err := tx.Delete(img).Error; err != nil {
				return err
			}
		}
		return tx.Delete(product).Error
	})
}
