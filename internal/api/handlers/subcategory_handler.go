package handlers

import (
	"Go-Storefront/domain"
	"Go-Storefront/internal/api/presenters"
	"Go-Storefront/pkg/subcategory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubcategoryHandler interface {
		GetSubcategories(c *fiber.Ctx) error
		GetSubcategory(c *fiber.Ctx) error
		CreateSubcategory(c *fiber.Ctx) error
		UpdateSubcategory(c *fiber.Ctx) error
		DeleteSubcategory(c *fiber.Ctx) error
	}

	subcategoryHandler struct {
		subcategoryService subcategory.SubcategoryService
		validator          *validator.Validate
	}
)

func NewSubcategoryHandler(subcategoryService subcategory.SubcategoryService, validator *validator.Validate) SubcategoryHandler {
	return &subcategoryHandler{
		subcategoryService: subcategoryService,
		validator:          validator,
	}
}

func (h *subcategoryHandler) GetSubcategories(c *fiber.Ctx) error {
	params, err := queryParams(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuery, err)
	}

	subcategories, pagination, err := h.subcategoryService.GetSubcategories(c.Context(), params)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSubcategories, err)
	}

	return presenters.ListResponse(c, subcategories, domain.Meta{Pagination: pagination}, domain.MessageSuccessGetSubcategories)
}

func (h *subcategoryHandler) GetSubcategory(c *fiber.Ctx) error {
	params, err := queryParams(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuery, err)
	}

	res, err := h.subcategoryService.GetSubcategory(c.Context(), c.Params("id"), params)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSubcategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubcategory)
}

func (h *subcategoryHandler) CreateSubcategory(c *fiber.Ctx) error {
	req := new(domain.SubcategoryDataRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSubcategory, err)
	}

	res, err := h.subcategoryService.CreateSubcategory(c.Context(), req.Data)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveSubcategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveSubcategory)
}

func (h *subcategoryHandler) UpdateSubcategory(c *fiber.Ctx) error {
	req := new(domain.SubcategoryDataRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSubcategory, err)
	}

	res, err := h.subcategoryService.UpdateSubcategory(c.Context(), c.Params("id"), req.Data)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveSubcategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveSubcategory)
}

func (h *subcategoryHandler) DeleteSubcategory(c *fiber.Ctx) error {
	res, err := h.subcategoryService.DeleteSubcategory(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDelSubcategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDelSubcategory)
}
