package product

import (
	"context"
	"errors"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/internal/utils/query"
	"Go-Storefront/internal/utils/storage"
	"Go-Storefront/pkg/mapper"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, params query.Params) ([]domain.Product, *domain.Pagination, error)
		GetProduct(ctx context.Context, key string, params query.Params) (domain.Product, error)
		CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.Product, error)
		UpdateProduct(ctx context.Context, key string, req domain.ProductRequest) (domain.Product, error)
		DeleteProduct(ctx context.Context, key string) (domain.Product, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) GetProducts(ctx context.Context, params query.Params) ([]domain.Product, *domain.Pagination, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return nil, nil, err
	}

	products, count, err := s.productRepository.GetProducts(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	return mapper.Products(products), q.Pagination(count), nil
}

func (s *productService) GetProduct(ctx context.Context, key string, params query.Params) (domain.Product, error) {
	q, err := params.Build(Schema)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.find(ctx, key, q.Preloads)
	if err != nil {
		return domain.Product{}, err
	}
	return *mapper.Product(product), nil
}

func (s *productService) find(ctx context.Context, key string, preloads []string) (*entities.Product, error) {
	product, err := s.productRepository.GetProduct(ctx, key, preloads)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) apply(ctx context.Context, product *entities.Product, req domain.ProductRequest) error {
	taken, err := s.productRepository.SlugExists(ctx, req.Slug, product.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrProductSlugTaken
	}

	product.ProductName = req.ProductName
	product.Slug = req.Slug
	product.Description = req.Description
	product.IsActive = req.IsActive == nil || *req.IsActive
	product.IsFeatured = req.IsFeatured
	product.Price = req.Price
	product.Stock = req.Stock
	product.Taste = req.Taste
	product.Origin = req.Origin

	product.CategoryID, product.Category = nil, nil
	if req.Category != "" {
		category, err := s.productRepository.GetCategory(ctx, req.Category)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		product.CategoryID, product.Category = &category.ID, category
	}

	product.SubcategoryID, product.Subcategory = nil, nil
	if req.Subcategory != "" {
		subcategory, err := s.productRepository.GetSubcategory(ctx, req.Subcategory)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSubcategoryNotFound
			}
			return err
		}
		if product.CategoryID != nil && subcategory.CategoryID != nil && *subcategory.CategoryID != *product.CategoryID {
			return domain.ErrInvalidProductData
		}
		product.SubcategoryID, product.Subcategory = &subcategory.ID, subcategory
	}

	images, err := s.productRepository.GetMedia(ctx, req.ImageIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMediaNotFound
		}
		return err
	}
	product.Images = images
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.Product, error) {
	product := &entities.Product{}
	if err := s.apply(ctx, product, req); err != nil {
		return domain.Product{}, err
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Product{}, domain.ErrProductSlugTaken
		}
		return domain.Product{}, err
	}
	return *mapper.Product(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, key string, req domain.ProductRequest) (domain.Product, error) {
	product, err := s.find(ctx, key, nil)
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.apply(ctx, product, req); err != nil {
		return domain.Product{}, err
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Product{}, domain.ErrProductSlugTaken
		}
		return domain.Product{}, err
	}
	return *mapper.Product(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, key string) (domain.Product, error) {
	product, err := s.find(ctx, key, []string{"Images"})
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.productRepository.DeleteProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	s.removeMedia(ctx, product.Images)
	return *mapper.Product(product), nil
}

// removeMedia drops the bucket objects behind deleted images. Failures only get logged,
// the rows are already gone.
func (s *productService) removeMedia(ctx context.Context, images []*entities.Media) {
	if s.s3 == nil || !s.s3.Enabled() {
		return
	}
	for _, img := range images {
		if img.Provider != entities.MediaProviderS3 {
			continue
		}
		key := img.ProviderKey
		if key == "" {
			key = s.s3.GetObjectKeyFromLink(img.URL)
		}
		if key == "" {
			continue
		}
		if err := s.s3.DeleteFile(ctx, key); err != nil {
			zap.S().Warnw("failed to delete product media", "product_media", img.DocumentID, "key", key, "error", err)
		}
	}
}
