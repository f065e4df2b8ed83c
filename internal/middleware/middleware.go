package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"Go-Storefront/domain"
	"Go-Storefront/internal/api/presenters"
	"Go-Storefront/internal/utils"
	"Go-Storefront/internal/utils/metrics"
	"Go-Storefront/pkg/jwt"
	"Go-Storefront/pkg/permission"
	"Go-Storefront/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		Authenticate() fiber.Handler
		Authorize(action string) fiber.Handler
		Metrics() fiber.Handler
	}

	middleware struct {
		jwtService        jwt.JWTService
		permissionService permission.PermissionService
		userService       user.UserService
	}
)

func NewMiddleware(jwtService jwt.JWTService, permissionService permission.PermissionService, userService user.UserService) Middleware {
	return &middleware{
		jwtService:        jwtService,
		permissionService: permissionService,
		userService:       userService,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfigDefault("CORS_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// Authenticate resolves the caller from an optional bearer token. Requests without
// a token continue as the public role; a bad token is rejected. The role comes from the
// stored account, not the token, so blocking a user or changing their role takes effect
// on their next request.
func (m *middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalRole, domain.RolePublic)

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, _, err := m.jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		id, err := strconv.ParseUint(userID, 10, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		account, err := m.userService.Me(c.Context(), uint(id))
		switch {
		case errors.Is(err, domain.ErrUserBlocked):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, err)
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		case err != nil:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}

		role := account.Role
		if role == "" {
			role = domain.RoleAuthenticated
		}
		c.Locals(LocalUserID, account.ID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// Authorize checks the caller's role holds action. Anonymous callers get 401, others 403.
func (m *middleware) Authorize(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role == "" {
			role = domain.RolePublic
		}

		allowed, err := m.permissionService.IsAllowed(c.Context(), role, action)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
		if allowed {
			return c.Next()
		}

		if role == domain.RolePublic {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MesaageUserNotAllowed, domain.ErrTokenNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}
}

func (m *middleware) Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		metrics.ObserveRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}

// UserID returns the authenticated caller, zero for anonymous requests.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalUserID).(uint)
	return id
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	if role == "" {
		return domain.RolePublic
	}
	return role
}
