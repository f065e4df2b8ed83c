package domain

import (
	"errors"
)

const (
	RolePublic        = "public"
	RoleAuthenticated = "authenticated"
	RoleAdmin         = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedQuery          = "invalid query parameters"
	MesaageUserNotAllowed       = "user not allowed"

	ErrParseID         = errors.New("failed to parse id")
	ErrUserNotAllowed  = errors.New("user not allowed")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrInvalidQuery    = errors.New("invalid query")
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record already exists")
	ErrMediaNotFound   = errors.New("referenced media does not exist")
)

type (
	Pagination struct {
		Page      int   `json:"page"`
		PageSize  int   `json:"pageSize"`
		PageCount int   `json:"pageCount"`
		Total     int64 `json:"total"`
	}

	Meta struct {
		Pagination *Pagination `json:"pagination,omitempty"`
		Stats      *Stats      `json:"stats,omitempty"`
	}

	Stats struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	ErrorBody struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
		Details any    `json:"details"`
	}

	Media struct {
		ID              uint   `json:"id"`
		DocumentID      string `json:"documentId"`
		Name            string `json:"name"`
		URL             string `json:"url"`
		AlternativeText string `json:"alternativeText"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		Mime            string `json:"mime,omitempty"`
	}
)

// NewPagination derives the page count for a limit/offset window.
func NewPagination(page, pageSize int, total int64) *Pagination {
	pageCount := 0
	if pageSize > 0 {
		pageCount = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Pagination{
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}
}
