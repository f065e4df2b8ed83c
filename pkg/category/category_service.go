package category

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
	CategoryService interface {
		GetCategories(ctx context.Context, params query.Params) ([]domain.Category, *domain.Pagination, error)
		GetCategory(ctx context.Context, key string, params query.Params) (domain.Category, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.Category, error)
		UpdateCategory(ctx context.Context, key string, req domain.CategoryRequest) (domain.Category, error)
		DeleteCategory(ctx context.Context, key string) (domain.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
	}
}

func (s *categoryService) GetCategories(ctx context.Context, params query.Params) ([]domain.Category, *domain.Pagination, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return nil, nil, err
	}

	categories, count, err := s.categoryRepository.GetCategories(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	return mapper.Categories(categories), q.Pagination(count), nil
}

func (s *categoryService) GetCategory(ctx context.Context, key string, params query.Params) (domain.Category, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return domain.Category{}, err
	}

	category, err := s.find(ctx, key, q.Preloads)
	if err != nil {
		return domain.Category{}, err
	}
	return *mapper.Category(category), nil
}

func (s *categoryService) find(ctx context.Context, key string, preloads []string) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategory(ctx, key, preloads)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) apply(ctx context.Context, category *entities.Category, req domain.CategoryRequest) error {
	taken, err := s.categoryRepository.SlugExists(ctx, req.Slug, category.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrCategorySlugTaken
	}

	category.CategoryName = req.CategoryName
	category.Slug = req.Slug
	category.ImageID = nil
	category.Image = nil
	if req.Image != "" {
		media, err := s.categoryRepository.GetMedia(ctx, req.Image)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMediaNotFound
			}
			return err
		}
		category.ImageID = &media.ID
		category.Image = media
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.Category, error) {
	category := &entities.Category{}
	if err := s.apply(ctx, category, req); err != nil {
		return domain.Category{}, err
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Category{}, domain.ErrCategorySlugTaken
		}
		return domain.Category{}, err
	}
	return *mapper.Category(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, key string, req domain.CategoryRequest) (domain.Category, error) {
	category, err := s.find(ctx, key, nil)
	if err != nil {
		return domain.Category{}, err
	}

	if err := s.apply(ctx, category, req); err != nil {
		return domain.Category{}, err
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Category{}, domain.ErrCategorySlugTaken
		}
		return domain.Category{}, err
	}
	return *mapper.Category(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, key string) (domain.Category, error) {
	category, err := s.find(ctx, key, nil)
	if err != nil {
		return domain.Category{}, err
	}

	if err := s.categoryRepository.DeleteCategory(ctx, category.ID); err != nil {
		return domain.Category{}, err
	}
	return *mapper.Category(category), nil
}
