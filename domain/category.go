package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories = "categories retrieved successfully"
	MessageSuccessGetCategory   = "category retrieved successfully"
	MessageSuccessSaveCategory  = "category saved successfully"
	MessageSuccessDelCategory   = "category deleted successfully"

	MessageFailedGetCategories = "failed to retrieve categories"
	MessageFailedGetCategory   = "failed to retrieve category"
	MessageFailedSaveCategory  = "failed to save category"
	MessageFailedDelCategory   = "failed to delete category"

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategorySlugTaken = errors.New("category slug already in use")
)

type (
	Category struct {
		ID            uint          `json:"id"`
		DocumentID    string        `json:"documentId"`
		CategoryName  string        `json:"categoryName"`
		Slug          string        `json:"slug"`
		Image         *Media        `json:"image,omitempty"`
		Subcategories []Subcategory `json:"subcategories,omitempty"`
		CreatedAt     time.Time     `json:"createdAt"`
		UpdatedAt     time.Time     `json:"updatedAt"`
	}

	CategoryRequest struct {
		CategoryName string `json:"categoryName" validate:"required,max=255"`
		Slug         string `json:"slug" validate:"required,slug,max=255"`
		Image        string `json:"image"`
	}

	CategoryDataRequest struct {
		Data CategoryRequest `json:"data" validate:"required"`
	}
)
