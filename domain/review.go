package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"
	MessageSuccessMarkHelpful  = "review marked as helpful"

	MessageFailedGetReviews   = "failed to retrieve reviews"
	MessageFailedCreateReview = "failed to create review"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"
	MessageFailedMarkHelpful  = "failed to mark review as helpful"

	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("you have already reviewed this product")
	ErrReviewForbidden     = errors.New("you can only modify your own reviews")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

type (
	Review struct {
		ID           uint      `json:"id"`
		DocumentID   string    `json:"documentId"`
		Rating       int       `json:"rating"`
		Title        string    `json:"title"`
		Content      string    `json:"content"`
		AuthorName   string    `json:"authorName"`
		HelpfulCount int       `json:"helpfulCount"`
		Product      *Product  `json:"product,omitempty"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}

	CreateReviewRequest struct {
		Product    string `json:"product" validate:"required"`
		Rating     int    `json:"rating" validate:"required,min=1,max=5"`
		Title      string `json:"title" validate:"max=255"`
		Content    string `json:"content" validate:"required"`
		AuthorName string `json:"authorName" validate:"max=255"`
	}

	UpdateReviewRequest struct {
		Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Title   string `json:"title" validate:"max=255"`
		Content string `json:"content"`
	}

	ReviewList struct {
		Reviews    []Review
		Pagination *Pagination
		Stats      *Stats
	}
)
