package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSubcategories = "subcategories retrieved successfully"
	MessageSuccessGetSubcategory   = "subcategory retrieved successfully"
	MessageSuccessSaveSubcategory  = "subcategory saved successfully"
	MessageSuccessDelSubcategory   = "subcategory deleted successfully"

	MessageFailedGetSubcategories = "failed to retrieve subcategories"
	MessageFailedGetSubcategory   = "failed to retrieve subcategory"
	MessageFailedSaveSubcategory  = "failed to save subcategory"
	MessageFailedDelSubcategory   = "failed to delete subcategory"

	ErrSubcategoryNotFound  = errors.New("subcategory not found")
	ErrSubcategorySlugTaken = errors.New("subcategory slug already in use")
)

type (
	Subcategory struct {
		ID         uint      `json:"id"`
		DocumentID string    `json:"documentId"`
		Name       string    `json:"name"`
		Slug       string    `json:"slug"`
		Icon       string    `json:"icon"`
		Order      int       `json:"order"`
		IsActive   bool      `json:"isActive"`
		Category   *Category `json:"category,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}

	SubcategoryRequest struct {
		Name     string `json:"name" validate:"required,max=255"`
		Slug     string `json:"slug" validate:"required,slug,max=255"`
		Icon     string `json:"icon"`
		Order    int    `json:"order" validate:"gte=0"`
		IsActive *bool  `json:"isActive"`
		Category string `json:"category" validate:"required"`
	}

	SubcategoryDataRequest struct {
		Data SubcategoryRequest `json:"data" validate:"required"`
	}
)
