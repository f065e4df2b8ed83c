package presenters

import (
	"errors"
	"strings"

	"Go-Storefront/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	Response struct {
		Data any          `json:"data"`
		Meta *domain.Meta `json:"meta,omitempty"`
	}

	ErrorEnvelope struct {
		Data  any              `json:"data"`
		Error domain.ErrorBody `json:"error"`
	}

	FieldError struct {
		Path    []string `json:"path"`
		Message string   `json:"message"`
		Name    string   `json:"name"`
	}
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidQuery, fiber.StatusBadRequest},
	{domain.ErrParseID, fiber.StatusBadRequest},
	{domain.ErrInvalidRating, fiber.StatusBadRequest},
	{domain.ErrInvalidProductData, fiber.StatusBadRequest},
	{domain.ErrMediaNotFound, fiber.StatusBadRequest},
	{domain.ErrUnknownAction, fiber.StatusBadRequest},
	{domain.ErrInvalidCredentials, fiber.StatusBadRequest},
	{domain.ErrTokenNotFound, fiber.StatusUnauthorized},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrUserNotAllowed, fiber.StatusForbidden},
	{domain.ErrReviewForbidden, fiber.StatusForbidden},
	{domain.ErrUserBlocked, fiber.StatusForbidden},
	{domain.ErrRecordNotFound, fiber.StatusNotFound},
	{domain.ErrProductNotFound, fiber.StatusNotFound},
	{domain.ErrCategoryNotFound, fiber.StatusNotFound},
	{domain.ErrSubcategoryNotFound, fiber.StatusNotFound},
	{domain.ErrReviewNotFound, fiber.StatusNotFound},
	{domain.ErrUserNotFound, fiber.StatusNotFound},
	{domain.ErrRoleNotFound, fiber.StatusNotFound},
	{domain.ErrDuplicateRecord, fiber.StatusConflict},
	{domain.ErrReviewAlreadyExists, fiber.StatusConflict},
	{domain.ErrProductSlugTaken, fiber.StatusConflict},
	{domain.ErrCategorySlugTaken, fiber.StatusConflict},
	{domain.ErrSubcategorySlugTaken, fiber.StatusConflict},
	{domain.ErrEmailTaken, fiber.StatusConflict},
}

// StatusFor maps a domain error to its HTTP status, or returns fallback.
func StatusFor(err error, fallback int) int {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fiber.StatusBadRequest
	}
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fallback
}

func errorName(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "ValidationError"
	case fiber.StatusUnauthorized:
		return "UnauthorizedError"
	case fiber.StatusForbidden:
		return "ForbiddenError"
	case fiber.StatusNotFound:
		return "NotFoundError"
	case fiber.StatusConflict:
		return "ConflictError"
	case fiber.StatusTooManyRequests:
		return "RateLimitError"
	}
	if status >= fiber.StatusInternalServerError {
		return "InternalServerError"
	}
	return "ApplicationError"
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	zap.S().Debugw(message, "path", c.Path(), "status", statusCode)
	return c.Status(statusCode).JSON(Response{Data: data, Meta: &domain.Meta{}})
}

func ListResponse(c *fiber.Ctx, data any, meta domain.Meta, message string) error {
	zap.S().Debugw(message, "path", c.Path(), "status", fiber.StatusOK)
	return c.Status(fiber.StatusOK).JSON(Response{Data: data, Meta: &meta})
}

// ErrorResponse writes the error envelope. Known domain errors override statusCode.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	status := statusCode
	if err != nil {
		status = StatusFor(err, statusCode)
	}

	body := domain.ErrorBody{
		Status:  status,
		Name:    errorName(status),
		Message: message,
		Details: fiber.Map{},
	}

	if status >= fiber.StatusInternalServerError {
		zap.S().Errorw(message, "path", c.Path(), "error", err)
	} else if err != nil {
		body.Message = err.Error()
		body.Details = details(message, err)
	}

	return c.Status(status).JSON(ErrorEnvelope{Data: nil, Error: body})
}

func details(message string, err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fiber.Map{"context": message}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// drop the struct name prefix, keep the nested path
		parts := strings.Split(fe.Namespace(), ".")
		if len(parts) > 1 {
			parts = parts[1:]
		}
		fields = append(fields, FieldError{
			Path:    parts,
			Message: fe.Field() + " failed on the '" + fe.Tag() + "' rule",
			Name:    "ValidationError",
		})
	}
	return fiber.Map{"context": message, "errors": fields}
}
