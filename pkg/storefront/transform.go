package storefront

import (
	"encoding/json"
	"time"
)

// Flat* mirror the documents served by the API. They only exist at the boundary; callers get
// the nested types back from the Transform functions.
type (
	FlatMedia struct {
		ID              uint   `json:"id"`
		URL             string `json:"url"`
		Name            string `json:"name"`
		AlternativeText string `json:"alternativeText"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
	}

	FlatCategory struct {
		ID           uint       `json:"id"`
		DocumentID   string     `json:"documentId,omitempty"`
		CategoryName string     `json:"categoryName"`
		Slug         string     `json:"slug"`
		Image        *FlatMedia `json:"image,omitempty"`
	}

	FlatSubcategory struct {
		ID         uint          `json:"id"`
		DocumentID string        `json:"documentId,omitempty"`
		Name       string        `json:"name"`
		Slug       string        `json:"slug"`
		Icon       string        `json:"icon"`
		Order      int           `json:"order"`
		IsActive   bool          `json:"isActive"`
		Category   *FlatCategory `json:"category,omitempty"`
	}

	FlatProduct struct {
		ID          uint             `json:"id"`
		DocumentID  string           `json:"documentId,omitempty"`
		ProductName string           `json:"productName"`
		Slug        string           `json:"slug"`
		Description string           `json:"description"`
		IsActive    bool             `json:"isActive"`
		IsFeatured  bool             `json:"isFeatured"`
		Price       float64          `json:"price"`
		Stock       int              `json:"stock"`
		Taste       string           `json:"taste"`
		Origin      string           `json:"origin"`
		Images      []FlatMedia      `json:"images,omitempty"`
		Category    *FlatCategory    `json:"category,omitempty"`
		Subcategory *FlatSubcategory `json:"subcategory,omitempty"`
	}

	FlatReview struct {
		ID           uint      `json:"id"`
		DocumentID   string    `json:"documentId,omitempty"`
		Rating       int       `json:"rating"`
		Title        string    `json:"title"`
		Content      string    `json:"content"`
		AuthorName   string    `json:"authorName"`
		HelpfulCount int       `json:"helpfulCount"`
		CreatedAt    time.Time `json:"createdAt"`
	}
)

func transformImage(m FlatMedia) Image {
	return Image{
		ID: m.ID,
		Attributes: ImageAttributes{
			URL:             m.URL,
			Name:            m.Name,
			AlternativeText: m.AlternativeText,
			Width:           m.Width,
			Height:          m.Height,
		},
	}
}

func transformCategoryRef(c *FlatCategory) CategoryRef {
	if c == nil {
		return CategoryRef{}
	}
	cat := TransformCategory(*c)
	return CategoryRef{Data: CategoryRefData(cat)}
}

func TransformCategory(c FlatCategory) Category {
	res := Category{
		ID: c.ID,
		Attributes: CategoryAttributes{
			CategoryName: c.CategoryName,
			Slug:         c.Slug,
		},
	}
	if c.Image != nil {
		img := transformImage(*c.Image)
		res.Attributes.Image.Data = &img
	}
	return res
}

func TransformCategories(items []FlatCategory) []Category {
	res := make([]Category, 0, len(items))
	for _, c := range items {
		res = append(res, TransformCategory(c))
	}
	return res
}

func TransformSubcategory(s FlatSubcategory) Subcategory {
	return Subcategory{
		ID: s.ID,
		Attributes: SubcategoryAttributes{
			Name:     s.Name,
			Slug:     s.Slug,
			Icon:     s.Icon,
			Order:    s.Order,
			IsActive: s.IsActive,
			Category: transformCategoryRef(s.Category),
		},
	}
}

func TransformSubcategories(items []FlatSubcategory) []Subcategory {
	res := make([]Subcategory, 0, len(items))
	for _, s := range items {
		res = append(res, TransformSubcategory(s))
	}
	return res
}

func TransformProduct(p FlatProduct) Product {
	res := Product{
		ID: p.ID,
		Attributes: ProductAttributes{
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
			Images:      ImageList{Data: make([]Image, 0, len(p.Images))},
			Category:    transformCategoryRef(p.Category),
		},
	}
	for _, img := range p.Images {
		res.Attributes.Images.Data = append(res.Attributes.Images.Data, transformImage(img))
	}
	if p.Subcategory != nil {
		sub := TransformSubcategory(*p.Subcategory)
		res.Attributes.Subcategory.Data = &SubcategoryRefData{ID: sub.ID, Attributes: sub.Attributes}
	}
	return res
}

func TransformProducts(items []FlatProduct) []Product {
	res := make([]Product, 0, len(items))
	for _, p := range items {
		res = append(res, TransformProduct(p))
	}
	return res
}

func TransformReview(r FlatReview) Review {
	return Review{
		ID: r.ID,
		Attributes: ReviewAttributes{
			DocumentID:   r.DocumentID,
			Rating:       r.Rating,
			Title:        r.Title,
			Content:      r.Content,
			AuthorName:   r.AuthorName,
			HelpfulCount: r.HelpfulCount,
			CreatedAt:    r.CreatedAt,
		},
	}
}

func TransformReviews(items []FlatReview) []Review {
	res := make([]Review, 0, len(items))
	for _, r := range items {
		res = append(res, TransformReview(r))
	}
	return res
}

func flattenImage(img Image) FlatMedia {
	return FlatMedia{
		ID:              img.ID,
		URL:             img.Attributes.URL,
		Name:            img.Attributes.Name,
		AlternativeText: img.Attributes.AlternativeText,
		Width:           img.Attributes.Width,
		Height:          img.Attributes.Height,
	}
}

func flattenCategory(c CategoryRefData) *FlatCategory {
	if c.ID == 0 && c.Attributes.Slug == "" && c.Attributes.CategoryName == "" {
		return nil
	}
	res := &FlatCategory{
		ID:           c.ID,
		CategoryName: c.Attributes.CategoryName,
		Slug:         c.Attributes.Slug,
	}
	if c.Attributes.Image.Data != nil {
		img := flattenImage(*c.Attributes.Image.Data)
		res.Image = &img
	}
	return res
}

// FlattenProduct is the inverse of TransformProduct over the fields both shapes carry.
func FlattenProduct(p Product) FlatProduct {
	a := p.Attributes
	res := FlatProduct{
		ID:          p.ID,
		DocumentID:  a.DocumentID,
		ProductName: a.ProductName,
		Slug:        a.Slug,
		Description: a.Description,
		IsActive:    a.IsActive,
		IsFeatured:  a.IsFeatured,
		Price:       a.Price,
		Stock:       a.Stock,
		Taste:       a.Taste,
		Origin:      a.Origin,
		Category:    flattenCategory(a.Category.Data),
	}
	for _, img := range a.Images.Data {
		res.Images = append(res.Images, flattenImage(img))
	}
	if sub := a.Subcategory.Data; sub != nil {
		res.Subcategory = &FlatSubcategory{
			ID:       sub.ID,
			Name:     sub.Attributes.Name,
			Slug:     sub.Attributes.Slug,
			Icon:     sub.Attributes.Icon,
			Order:    sub.Attributes.Order,
			IsActive: sub.Attributes.IsActive,
			Category: flattenCategory(sub.Attributes.Category.Data),
		}
	}
	return res
}

// HasNestedShape reports whether raw is a nested document: an object carrying an
// "attributes" object next to its id.
func HasNestedShape(raw json.RawMessage) bool {
	var doc struct {
		ID         *json.Number    `json:"id"`
		Attributes json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	if doc.ID == nil || len(doc.Attributes) == 0 {
		return false
	}
	var attrs map[string]json.RawMessage
	return json.Unmarshal(doc.Attributes, &attrs) == nil && attrs != nil
}
