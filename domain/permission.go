package domain

import (
	"errors"
)

var (
	MessageSuccessGetRoles   = "roles retrieved successfully"
	MessageSuccessGetRole    = "role retrieved successfully"
	MessageSuccessUpdateRole = "role updated successfully"

	MessageFailedGetRoles   = "failed to retrieve roles"
	MessageFailedGetRole    = "failed to retrieve role"
	MessageFailedUpdateRole = "failed to update role"

	ErrRoleNotFound  = errors.New("role not found")
	ErrUnknownAction = errors.New("unknown permission action")
)

const (
	ActionProductFind        = "api::product.product.find"
	ActionProductFindOne     = "api::product.product.findOne"
	ActionProductCreate      = "api::product.product.create"
	ActionProductUpdate      = "api::product.product.update"
	ActionProductDelete      = "api::product.product.delete"
	ActionCategoryFind       = "api::category.category.find"
	ActionCategoryFindOne    = "api::category.category.findOne"
	ActionCategoryCreate     = "api::category.category.create"
	ActionCategoryUpdate     = "api::category.category.update"
	ActionCategoryDelete     = "api::category.category.delete"
	ActionSubcategoryFind    = "api::subcategory.subcategory.find"
	ActionSubcategoryFindOne = "api::subcategory.subcategory.findOne"
	ActionSubcategoryCreate  = "api::subcategory.subcategory.create"
	ActionSubcategoryUpdate  = "api::subcategory.subcategory.update"
	ActionSubcategoryDelete  = "api::subcategory.subcategory.delete"
	ActionReviewFindByProd   = "api::review.review.findByProduct"
	ActionReviewHelpful      = "api::review.review.markHelpful"
	ActionReviewCreate       = "api::review.review.create"
	ActionReviewUpdate       = "api::review.review.update"
	ActionReviewDelete       = "api::review.review.delete"
	ActionUserMe             = "plugin::users-permissions.user.me"
)

// KnownActions lists every action a role may be granted.
var KnownActions = []string{
	ActionProductFind, ActionProductFindOne, ActionProductCreate, ActionProductUpdate, ActionProductDelete,
	ActionCategoryFind, ActionCategoryFindOne, ActionCategoryCreate, ActionCategoryUpdate, ActionCategoryDelete,
	ActionSubcategoryFind, ActionSubcategoryFindOne, ActionSubcategoryCreate, ActionSubcategoryUpdate, ActionSubcategoryDelete,
	ActionReviewFindByProd, ActionReviewHelpful, ActionReviewCreate, ActionReviewUpdate, ActionReviewDelete,
	ActionUserMe,
}

// PublicReadActions is what a fresh public role is granted.
var PublicReadActions = []string{
	ActionProductFind, ActionProductFindOne,
	ActionCategoryFind, ActionCategoryFindOne,
	ActionSubcategoryFind, ActionSubcategoryFindOne,
	ActionReviewFindByProd, ActionReviewHelpful,
}

var AuthenticatedActions = []string{
	ActionReviewCreate, ActionReviewUpdate, ActionReviewDelete, ActionUserMe,
}

type (
	Role struct {
		ID          uint            `json:"id"`
		Name        string          `json:"name"`
		Type        string          `json:"type"`
		Description string          `json:"description"`
		Permissions map[string]bool `json:"permissions,omitempty"`
	}

	UpdateRoleRequest struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Permissions map[string]bool `json:"permissions" validate:"required"`
	}
)
