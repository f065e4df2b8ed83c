package subcategory

import (
	"context"

	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"gorm.io/gorm"
)

var Schema = query.Schema{
	Table: "subcategories",
	Fields: map[string]query.Field{
		"id":         {Column: "id", Kind: query.Int},
		"documentId": {Column: "document_id"},
		"name":       {Column: "name"},
		"slug":       {Column: "slug"},
		"order":      {Column: "sort_order", Kind: query.Int},
		"isActive":   {Column: "is_active", Kind: query.Bool},
		"createdAt":  {Column: "created_at", Kind: query.Time},
		"updatedAt":  {Column: "updated_at", Kind: query.Time},
	},
	Relations: map[string]query.Relation{
		"category": {
			Table:      "categories",
			ForeignKey: "category_id",
			Fields: map[string]query.Field{
				"id":         {Column: "id", Kind: query.Int},
				"documentId": {Column: "document_id"},
				"slug":       {Column: "slug"},
			},
		},
	},
	Populate: map[string][]string{
		"category": {"Category"},
	},
	DefaultSort: []query.SortField{{Field: "order"}, {Field: "name"}},
}

type (
	SubcategoryRepository interface {
		GetSubcategories(ctx context.Context, q *query.Query) ([]*entities.Subcategory, int64, error)
		GetSubcategory(ctx context.Context, key string, preloads []string) (*entities.Subcategory, error)
		GetCategory(ctx context.Context, key string) (*entities.Category, error)
		SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
		CreateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error
		UpdateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error
		DeleteSubcategory(ctx context.Context, id uint) error
	}

	subcategoryRepository struct {
		db *gorm.DB
	}
)

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) GetSubcategories(ctx context.Context, q *query.Query) ([]*entities.Subcategory, int64, error) {
	var subcategories []*entities.Subcategory
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Subcategory{}).Scopes(q.Filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	db := query.Preload(r.db.WithContext(ctx), q.Preloads)
	if err := db.Scopes(q.Filter, q.Order, q.Paginate).Find(&subcategories).Error; err != nil {
		return nil, 0, err
	}

	return subcategories, count, nil
}

func (r *subcategoryRepository) GetSubcategory(ctx context.Context, key string, preloads []string) (*entities.Subcategory, error) {
	var subcategory entities.Subcategory
	db := query.Preload(r.db.WithContext(ctx), preloads)
	if err := db.Scopes(query.ByKey("subcategories", key)).First(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) GetCategory(ctx context.Context, key string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("categories", key)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *subcategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Subcategory{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subcategoryRepository) CreateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error {
	return r.db.WithContext(ctx).Omit("Category").Create(subcategory).Error
}

func (r *subcategoryRepository) UpdateSubcategory(ctx context.Context, subcategory *entities.Subcategory) error {
	return r.db.WithContext(ctx).Omit("Category").Save(subcategory).Error
}

func (r *subcategoryRepository) DeleteSubcategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Product{}).Where("subcategory_id = ?", id).Update("subcategory_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Subcategory{}).Error
	})
}
