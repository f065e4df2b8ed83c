package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"

	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedGetProduct    = "failed to retrieve product"
	MessageFailedCreateProduct = "failed to create product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"

	ErrProductNotFound    = errors.New("product not found")
	ErrProductSlugTaken   = errors.New("product slug already in use")
	ErrInvalidProductData = errors.New("invalid product data")
)

type (
	Product struct {
		ID          uint         `json:"id"`
		DocumentID  string       `json:"documentId"`
		ProductName string       `json:"productName"`
		Slug        string       `json:"slug"`
		Description string       `json:"description"`
		IsActive    bool         `json:"isActive"`
		IsFeatured  bool         `json:"isFeatured"`
		Price       float64      `json:"price"`
		Stock       int          `json:"stock"`
		Taste       string       `json:"taste"`
		Origin      string       `json:"origin"`
		Images      []Media      `json:"images,omitempty"`
		Category    *Category    `json:"category,omitempty"`
		Subcategory *Subcategory `json:"subcategory,omitempty"`
		CreatedAt   time.Time    `json:"createdAt"`
		UpdatedAt   time.Time    `json:"updatedAt"`
	}

	ProductRequest struct {
		ProductName string   `json:"productName" validate:"required,max=255"`
		Slug        string   `json:"slug" validate:"required,slug,max=255"`
		Description string   `json:"description"`
		IsActive    *bool    `json:"isActive"`
		IsFeatured  bool     `json:"isFeatured"`
		Price       float64  `json:"price" validate:"gte=0"`
		Stock       int      `json:"stock" validate:"gte=0"`
		Taste       string   `json:"taste"`
		Origin      string   `json:"origin"`
		Category    string   `json:"category" validate:"omitempty"`
		Subcategory string   `json:"subcategory" validate:"omitempty"`
		ImageIDs    []string `json:"images"`
	}

	// ProductDataRequest mirrors the {"data": {...}} body the admin panel posts.
	ProductDataRequest struct {
		Data ProductRequest `json:"data" validate:"required"`
	}
)
