package review

import (
	"context"
	"errors"
	"fmt"
	"html"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/mailing"
	"Go-Storefront/internal/utils/metrics"
	"Go-Storefront/internal/utils/query"
	"Go-Storefront/pkg/mapper"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		GetReviewsByProduct(ctx context.Context, productKey string, params query.Params) (domain.ReviewList, error)
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID uint) (domain.Review, error)
		UpdateReview(ctx context.Context, key string, req domain.UpdateReviewRequest, userID uint, role string) (domain.Review, error)
		DeleteReview(ctx context.Context, key string, userID uint, role string) (domain.Review, error)
		MarkHelpful(ctx context.Context, key string) (domain.Review, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		mailer           mailing.Mailer
		notifyTo         string
	}
)

func NewReviewService(reviewRepository ReviewRepository, mailer mailing.Mailer, notifyTo string) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		mailer:           mailer,
		notifyTo:         notifyTo,
	}
}

func (s *reviewService) GetReviewsByProduct(ctx context.Context, productKey string, params query.Params) (domain.ReviewList, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return domain.ReviewList{}, err
	}

	product, err := s.reviewRepository.GetProduct(ctx, productKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewList{}, domain.ErrProductNotFound
		}
		return domain.ReviewList{}, err
	}

	reviews, count, err := s.reviewRepository.GetReviewsByProduct(ctx, product.ID, q)
	if err != nil {
		return domain.ReviewList{}, err
	}

	average, total, err := s.reviewRepository.GetReviewStats(ctx, product.ID)
	if err != nil {
		return domain.ReviewList{}, err
	}

	return domain.ReviewList{
		Reviews:    mapper.Reviews(reviews),
		Pagination: q.Pagination(count),
		Stats:      &domain.Stats{Average: average, Count: total},
	}, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID uint) (domain.Review, error) {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return domain.Review{}, domain.ErrInvalidRating
	}

	product, err := s.reviewRepository.GetProduct(ctx, req.Product)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, domain.ErrProductNotFound
		}
		return domain.Review{}, err
	}

	exists, err := s.reviewRepository.ExistsForUser(ctx, userID, product.ID)
	if err != nil {
		return domain.Review{}, err
	}
	if exists {
		return domain.Review{}, domain.ErrReviewAlreadyExists
	}

	authorName := req.AuthorName
	if authorName == "" {
		user, err := s.reviewRepository.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.Review{}, domain.ErrUserNotFound
			}
			return domain.Review{}, err
		}
		authorName = user.Username
	}

	review := &entities.Review{
		ProductID:  product.ID,
		UserID:     &userID,
		AuthorName: authorName,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
		IsApproved: true,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Review{}, domain.ErrReviewAlreadyExists
		}
		return domain.Review{}, err
	}

	metrics.ReviewEvent("created")
	go s.notify(product, review)

	return *mapper.Review(review), nil
}

func (s *reviewService) notify(product *entities.Product, review *entities.Review) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}

	subject := fmt.Sprintf("New %d-star review for %s", review.Rating, product.ProductName)
	body := fmt.Sprintf("<p><b>%s</b> wrote:</p><h4>%s</h4><p>%s</p>",
		html.EscapeString(review.AuthorName),
		html.EscapeString(review.Title),
		html.EscapeString(review.Content),
	)
	if err := s.mailer.SendMail(s.notifyTo, subject, body); err != nil {
		zap.S().Warnw("failed to send review notification", "review", review.DocumentID, "error", err)
	}
}

// owned loads a review and checks the caller may modify it.
func (s *reviewService) owned(ctx context.Context, key string, userID uint, role string) (*entities.Review, error) {
	review, err := s.reviewRepository.GetReview(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	if role == domain.RoleAdmin {
		return review, nil
	}
	if review.UserID == nil || *review.UserID != userID {
		return nil, domain.ErrReviewForbidden
	}
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, key string, req domain.UpdateReviewRequest, userID uint, role string) (domain.Review, error) {
	review, err := s.owned(ctx, key, userID, role)
	if err != nil {
		return domain.Review{}, err
	}

	if req.Rating != 0 {
		if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
			return domain.Review{}, domain.ErrInvalidRating
		}
		review.Rating = req.Rating
	}
	if req.Title != "" {
		review.Title = req.Title
	}
	if req.Content != "" {
		review.Content = req.Content
	}

	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return domain.Review{}, err
	}

	metrics.ReviewEvent("updated")
	return *mapper.Review(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, key string, userID uint, role string) (domain.Review, error) {
	review, err := s.owned(ctx, key, userID, role)
	if err != nil {
		return domain.Review{}, err
	}

	if err := s.reviewRepository.DeleteReview(ctx, review.ID); err != nil {
		return domain.Review{}, err
	}

	metrics.ReviewEvent("deleted")
	return *mapper.Review(review), nil
}

func (s *reviewService) MarkHelpful(ctx context.Context, key string) (domain.Review, error) {
	review, err := s.reviewRepository.GetReview(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, domain.ErrReviewNotFound
		}
		return domain.Review{}, err
	}

	if err := s.reviewRepository.IncrementHelpful(ctx, review.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, domain.ErrReviewNotFound
		}
		return domain.Review{}, err
	}

	// re-read so concurrent votes are reflected
	updated, err := s.reviewRepository.GetReview(ctx, review.DocumentID)
	if err != nil {
		return domain.Review{}, err
	}

	metrics.ReviewEvent("helpful")
	return *mapper.Review(updated), nil
}
