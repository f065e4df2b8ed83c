package subcategory

import (
	"context"
	"errors"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"
	"Go-Storefront/pkg/mapper"

	"gorm.io/gorm"
)

type (
	SubcategoryService interface {
		GetSubcategories(ctx context.Context, params query.Params) ([]domain.Subcategory, *domain.Pagination, error)
		GetSubcategory(ctx context.Context, key string, params query.Params) (domain.Subcategory, error)
		CreateSubcategory(ctx context.Context, req domain.SubcategoryRequest) (domain.Subcategory, error)
		UpdateSubcategory(ctx context.Context, key string, req domain.SubcategoryRequest) (domain.Subcategory, error)
		DeleteSubcategory(ctx context.Context, key string) (domain.Subcategory, error)
	}

	subcategoryService struct {
		subcategoryRepository SubcategoryRepository
	}
)

func NewSubcategoryService(subcategoryRepository SubcategoryRepository) SubcategoryService {
	return &subcategoryService{
		subcategoryRepository: subcategoryRepository,
	}
}

func (s *subcategoryService) GetSubcategories(ctx context.Context, params query.Params) ([]domain.Subcategory, *domain.Pagination, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return nil, nil, err
	}

	subcategories, count, err := s.subcategoryRepository.GetSubcategories(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	return mapper.Subcategories(subcategories), q.Pagination(count), nil
}

func (s *subcategoryService) GetSubcategory(ctx context.Context, key string, params query.Params) (domain.Subcategory, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return domain.Subcategory{}, err
	}

	subcategory, err := s.find(ctx, key, q.Preloads)
	if err != nil {
		return domain.Subcategory{}, err
	}
	return *mapper.Subcategory(subcategory), nil
}

func (s *subcategoryService) find(ctx context.Context, key string, preloads []string) (*entities.Subcategory, error) {
	subcategory, err := s.subcategoryRepository.GetSubcategory(ctx, key, preloads)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubcategoryNotFound
		}
		return nil, err
	}
	return subcategory, nil
}

func (s *subcategoryService) apply(ctx context.Context, subcategory *entities.Subcategory, req domain.SubcategoryRequest) error {
	taken, err := s.subcategoryRepository.SlugExists(ctx, req.Slug, subcategory.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrSubcategorySlugTaken
	}

	category, err := s.subcategoryRepository.GetCategory(ctx, req.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	subcategory.Name = req.Name
	subcategory.Slug = req.Slug
	subcategory.Icon = req.Icon
	subcategory.Order = req.Order
	subcategory.IsActive = req.IsActive == nil || *req.IsActive
	subcategory.CategoryID = &category.ID
	subcategory.Category = category
	return nil
}

func (s *subcategoryService) CreateSubcategory(ctx context.Context, req domain.SubcategoryRequest) (domain.Subcategory, error) {
	subcategory := &entities.Subcategory{}
	if err := s.apply(ctx, subcategory, req); err != nil {
		return domain.Subcategory{}, err
	}

	if err := s.subcategoryRepository.CreateSubcategory(ctx, subcategory); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Subcategory{}, domain.ErrSubcategorySlugTaken
		}
		return domain.Subcategory{}, err
	}
	return *mapper.Subcategory(subcategory), nil
}

func (s *subcategoryService) UpdateSubcategory(ctx context.Context, key string, req domain.SubcategoryRequest) (domain.Subcategory, error) {
	subcategory, err := s.find(ctx, key, nil)
	if err != nil {
		return domain.Subcategory{}, err
	}

	if err := s.apply(ctx, subcategory, req); err != nil {
		return domain.Subcategory{}, err
	}

	if err := s.subcategoryRepository.UpdateSubcategory(ctx, subcategory); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Subcategory{}, domain.ErrSubcategorySlugTaken
		}
		return domain.Subcategory{}, err
	}
	return *mapper.Subcategory(subcategory), nil
}

func (s *subcategoryService) DeleteSubcategory(ctx context.Context, key string) (domain.Subcategory, error) {
	subcategory, err := s.find(ctx, key, nil)
	if err != nil {
		return domain.Subcategory{}, err
	}

	if err := s.subcategoryRepository.DeleteSubcategory(ctx, subcategory.ID); err != nil {
		return domain.Subcategory{}, err
	}
	return *mapper.Subcategory(subcategory), nil
}
