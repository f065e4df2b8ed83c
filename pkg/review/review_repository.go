package review

import (
	"context"

	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"

	"gorm.io/gorm"
)

var Schema = query.Schema{
	Table: "reviews",
	Fields: map[string]query.Field{
		"id":           {Column: "id", Kind: query.Int},
		"rating":       {Column: "rating", Kind: query.Int},
		"helpfulCount": {Column: "helpful_count", Kind: query.Int},
		"createdAt":    {Column: "created_at", Kind: query.Time},
		"updatedAt":    {Column: "updated_at", Kind: query.Time},
	},
	Populate: map[string][]string{
		"product": {"Product"},
	},
	DefaultSort: []query.SortField{{Field: "createdAt", Desc: true}},
}

type (
	ReviewRepository interface {
		GetProduct(ctx context.Context, key string) (*entities.Product, error)
		GetUser(ctx context.Context, id uint) (*entities.User, error)
		GetReviewsByProduct(ctx context.Context, productID uint, q *query.Query) ([]*entities.Review, int64, error)
		GetReviewStats(ctx context.Context, productID uint) (float64, int64, error)
		GetReview(ctx context.Context, key string) (*entities.Review, error)
		ExistsForUser(ctx context.Context, userID, productID uint) (bool, error)
		CreateReview(ctx context.Context, review *entities.Review) error
		UpdateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, id uint) error
		IncrementHelpful(ctx context.Context, id uint) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetProduct(ctx context.Context, key string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("products", key)).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *reviewRepository) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *reviewRepository) approved(productID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("reviews.product_id = ? AND reviews.is_approved = ?", productID, true)
	}
}

func (r *reviewRepository) GetReviewsByProduct(ctx context.Context, productID uint, q *query.Query) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Scopes(r.approved(productID), q.Filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	db := query.Preload(r.db.WithContext(ctx), q.Preloads)
	if err := db.Scopes(r.approved(productID), q.Filter, q.Order, q.Paginate).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) GetReviewStats(ctx context.Context, productID uint) (float64, int64, error) {
	var stats struct {
		Average float64
		Count   int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Scopes(r.approved(productID)).
		Scan(&stats).Error; err != nil {
		return 0, 0, err
	}
	return stats.Average, stats.Count, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, key string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Scopes(query.ByKey("reviews", key)).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsForUser(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Omit("Product", "User").Create(review).Error
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Omit("Product", "User").Save(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Review{}).Error
}

func (r *reviewRepository) IncrementHelpful(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
