// Package storefront is the client side of the store API: it fetches the flat documents the
// server returns, adapts them to the nested product shape the rest of the client works with,
// and keeps the signed-in session.
package storefront

import "time"

type (
	Product struct {
		ID         uint              `json:"id"`
		Attributes ProductAttributes `json:"attributes"`
	}

	ProductAttributes struct {
		DocumentID  string         `json:"documentId,omitempty"`
		ProductName string         `json:"productName"`
		Slug        string         `json:"slug"`
		Description string         `json:"description"`
		IsActive    bool           `json:"isActive"`
		IsFeatured  bool           `json:"isFeatured"`
		Price       float64        `json:"price"`
		Stock       int            `json:"stock"`
		Taste       string         `json:"taste"`
		Origin      string         `json:"origin"`
		Images      ImageList      `json:"images"`
		Category    CategoryRef    `json:"category"`
		Subcategory SubcategoryRef `json:"subcategory"`
	}

	ImageList struct {
		Data []Image `json:"data"`
	}

	ImageRef struct {
		Data *Image `json:"data"`
	}

	Image struct {
		ID         uint            `json:"id"`
		Attributes ImageAttributes `json:"attributes"`
	}

	ImageAttributes struct {
		URL             string `json:"url"`
		Name            string `json:"name"`
		AlternativeText string `json:"alternativeText"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
	}

	CategoryRef struct {
		Data CategoryRefData `json:"data"`
	}

	CategoryRefData struct {
		ID         uint               `json:"id"`
		Attributes CategoryAttributes `json:"attributes"`
	}

	SubcategoryRef struct {
		Data *SubcategoryRefData `json:"data"`
	}

	SubcategoryRefData struct {
		ID         uint                  `json:"id"`
		Attributes SubcategoryAttributes `json:"attributes"`
	}

	Category struct {
		ID         uint               `json:"id"`
		Attributes CategoryAttributes `json:"attributes"`
	}

	CategoryAttributes struct {
		CategoryName string   `json:"categoryName"`
		Slug         string   `json:"slug"`
		Image        ImageRef `json:"image"`
	}

	Subcategory struct {
		ID         uint                  `json:"id"`
		Attributes SubcategoryAttributes `json:"attributes"`
	}

	SubcategoryAttributes struct {
		Name     string      `json:"name"`
		Slug     string      `json:"slug"`
		Icon     string      `json:"icon"`
		Order    int         `json:"order"`
		IsActive bool        `json:"isActive"`
		Category CategoryRef `json:"category"`
	}

	Review struct {
		ID         uint             `json:"id"`
		Attributes ReviewAttributes `json:"attributes"`
	}

	ReviewAttributes struct {
		DocumentID   string    `json:"documentId,omitempty"`
		Rating       int       `json:"rating"`
		Title        string    `json:"title"`
		Content      string    `json:"content"`
		AuthorName   string    `json:"authorName"`
		HelpfulCount int       `json:"helpfulCount"`
		CreatedAt    time.Time `json:"createdAt"`
	}

	Pagination struct {
		Page      int   `json:"page"`
		PageSize  int   `json:"pageSize"`
		PageCount int   `json:"pageCount"`
		Total     int64 `json:"total"`
	}

	ReviewStats struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	// ReviewPage is one page of a product's reviews with the rating summary.
	ReviewPage struct {
		Reviews    []Review
		Stats      ReviewStats
		Pagination Pagination
	}

	User struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role,omitempty"`
	}
)
