// Package mapper converts gorm entities into the flat response documents served by the API.
// Relations are only emitted when they were preloaded.
package mapper

import (
	"Go-Storefront/domain"
	"Go-Storefront/entities"
)

func Media(m *entities.Media) *domain.Media {
	if m == nil {
		return nil
	}
	return &domain.Media{
		ID:              m.ID,
		DocumentID:      m.DocumentID,
		Name:            m.Name,
		URL:             m.URL,
		AlternativeText: m.AlternativeText,
		Width:           m.Width,
		Height:          m.Height,
		Mime:            m.Mime,
	}
}

func Category(c *entities.Category) *domain.Category {
	if c == nil {
		return nil
	}
	res := &domain.Category{
		ID:           c.ID,
		DocumentID:   c.DocumentID,
		CategoryName: c.CategoryName,
		Slug:         c.Slug,
		Image:        Media(c.Image),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, sub := range c.Subcategories {
		res.Subcategories = append(res.Subcategories, *Subcategory(sub))
	}
	return res
}

func Subcategory(s *entities.Subcategory) *domain.Subcategory {
	if s == nil {
		return nil
	}
	return &domain.Subcategory{
		ID:         s.ID,
		DocumentID: s.DocumentID,
		Name:       s.Name,
		Slug:       s.Slug,
		Icon:       s.Icon,
		Order:      s.Order,
		IsActive:   s.IsActive,
		Category:   Category(s.Category),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func Product(p *entities.Product) *domain.Product {
	if p == nil {
		return nil
	}
	res := &domain.Product{
		ID:          p.ID,
		DocumentID:  p.DocumentID,
		ProductName: p.ProductName,
		Slug:        p.Slug,
		Description: p.Description,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		Price:       p.Price,
		Stock:       p.Stock,
		Taste:       p.Taste,
		Origin:      p.Origin,
		Category:    Category(p.Category),
		Subcategory: Subcategory(p.Subcategory),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Images != nil {
		res.Images = make([]domain.Media, 0, len(p.Images))
		for _, img := range p.Images {
			res.Images = append(res.Images, *Media(img))
		}
	}
	return res
}

func Products(items []*entities.Product) []domain.Product {
	res := make([]domain.Product, 0, len(items))
	for _, p := range items {
		res = append(res, *Product(p))
	}
	return res
}

func Categories(items []*entities.Category) []domain.Category {
	res := make([]domain.Category, 0, len(items))
	for _, c := range items {
		res = append(res, *Category(c))
	}
	return res
}

func Subcategories(items []*entities.Subcategory) []domain.Subcategory {
	res := make([]domain.Subcategory, 0, len(items))
	for _, s := range items {
		res = append(res, *Subcategory(s))
	}
	return res
}

func Review(r *entities.Review) *domain.Review {
	if r == nil {
		return nil
	}
	return &domain.Review{
		ID:           r.ID,
		DocumentID:   r.DocumentID,
		Rating:       r.Rating,
		Title:        r.Title,
		Content:      r.Content,
		AuthorName:   r.AuthorName,
		HelpfulCount: r.HelpfulCount,
		Product:      Product(r.Product),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func Reviews(items []*entities.Review) []domain.Review {
	res := make([]domain.Review, 0, len(items))
	for _, r := range items {
		res = append(res, *Review(r))
	}
	return res
}

func User(u *entities.User) *domain.User {
	if u == nil {
		return nil
	}
	res := &domain.User{
		ID:         u.ID,
		DocumentID: u.DocumentID,
		Username:   u.Username,
		Email:      u.Email,
		Blocked:    u.Blocked,
		CreatedAt:  u.CreatedAt,
	}
	if u.Role != nil {
		res.Role = u.Role.Type
	}
	return res
}

func Role(r *entities.Role) *domain.Role {
	if r == nil {
		return nil
	}
	res := &domain.Role{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
	}
	if r.Permissions != nil {
		res.Permissions = make(map[string]bool, len(r.Permissions))
		for _, p := range r.Permissions {
			res.Permissions[p.Action] = p.Enabled
		}
	}
	return res
}
