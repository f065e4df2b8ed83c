package category

import (
	"context"

	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"gorm.io/gorm"
)

var Schema = query.Schema{
	Table: "categories",
	Fields: map[string]query.Field{
		"id":           {Column: "id", Kind: query.Int},
		"documentId":   {Column: "document_id"},
		"categoryName": {Column: "category_name"},
		"slug":         {Column: "slug"},
		"createdAt":    {Column: "created_at", Kind: query.Time},
		"updatedAt":    {Column: "updated_at", Kind: query.Time},
	},
	Populate: map[string][]string{
		"image":         {"Image"},
		"subcategories": {"Subcategories"},
	},
	DefaultSort: []query.SortField{{Field: "categoryName"}},
}

type (
	CategoryRepository interface {
		GetCategories(ctx context.Context, q *query.Query) ([]*entities.Category, int64, error)
		GetCategory(ctx context.Context, key string, preloads []string) (*entities.Category, error)
		SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id uint) error
		GetMedia(ctx context.Context, key string) (*entities.Media, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetCategories(ctx context.Context, q *query.Query) ([]*entities.Category, int64, error) {
	var categories []*entities.Category
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Scopes(q.Filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	db := query.Preload(r.db.WithContext(ctx), q.Preloads)
	if err := db.Scopes(q.Filter, q.Order, q.Paginate).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, count, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, key string, preloads []string) (*entities.Category, error) {
	var category entities.Category
	db := query.Preload(r.db.WithContext(ctx), preloads)
	if err := db.Scopes(query.ByKey("categories", key)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Omit("Image", "Subcategories", "Products").Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// products and subcategories keep living without a parent
		if err := tx.Model(&entities.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Subcategory{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Category{}).Error
	})
}

func (r *categoryRepository) GetMedia(ctx context.Context, key string) (*entities.Media, error) {
	var media entities.Media
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("media", key)).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}
