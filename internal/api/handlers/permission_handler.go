package handlers

import (
	"Go-Storefront/domain"
	"Go-Storefront/internal/api/presenters"
	"Go-Storefront/pkg/permission"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PermissionHandler interface {
		GetRoles(c *fiber.Ctx) error
		GetRole(c *fiber.Ctx) error
		UpdateRole(c *fiber.Ctx) error
	}

	permissionHandler struct {
		permissionService permission.PermissionService
		validator         *validator.Validate
	}
)

func NewPermissionHandler(permissionService permission.PermissionService, validator *validator.Validate) PermissionHandler {
	return &permissionHandler{
		permissionService: permissionService,
		validator:         validator,
	}
}

func (h *permissionHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.permissionService.GetRoles(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRoles, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"roles": roles})
}

func (h *permissionHandler) GetRole(c *fiber.Ctx) error {
	role, err := h.permissionService.GetRole(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRole, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role})
}

func (h *permissionHandler) UpdateRole(c *fiber.Ctx) error {
	req := new(domain.UpdateRoleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRole, err)
	}

	role, err := h.permissionService.UpdateRole(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRole, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role})
}
