package routes

import (
	"Go-Storefront/domain"
	"Go-Storefront/internal/api/handlers"
	"Go-Storefront/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	ProductHandler     handlers.ProductHandler
	CategoryHandler    handlers.CategoryHandler
	SubcategoryHandler handlers.SubcategoryHandler
	ReviewHandler      handlers.ReviewHandler
	UserHandler        handlers.UserHandler
	PermissionHandler  handlers.PermissionHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.Metrics())
	c.GuestRoute()

	api := c.App.Group("/api", c.Middleware.Authenticate())
	c.Auth(api)
	c.Products(api)
	c.Categories(api)
	c.Subcategories(api)
	c.Reviews(api)
	c.Roles(api)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth(api fiber.Router) {
	api.Post("/auth/local", c.UserHandler.Login)
	api.Post("/auth/local/register", c.UserHandler.Register)
	api.Get("/users/me", c.Middleware.Authorize(domain.ActionUserMe), c.UserHandler.Me)
}

func (c *Config) Products(api fiber.Router) {
	products := api.Group("/products")
	products.Get("", c.Middleware.Authorize(domain.ActionProductFind), c.ProductHandler.GetProducts)
	products.Get("/:id", c.Middleware.Authorize(domain.ActionProductFindOne), c.ProductHandler.GetProduct)
	products.Post("", c.Middleware.Authorize(domain.ActionProductCreate), c.ProductHandler.CreateProduct)
	products.Put("/:id", c.Middleware.Authorize(domain.ActionProductUpdate), c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.Middleware.Authorize(domain.ActionProductDelete), c.ProductHandler.DeleteProduct)
}

func (c *Config) Categories(api fiber.Router) {
	categories := api.Group("/categories")
	categories.Get("", c.Middleware.Authorize(domain.ActionCategoryFind), c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.Middleware.Authorize(domain.ActionCategoryFindOne), c.CategoryHandler.GetCategory)
	categories.Post("", c.Middleware.Authorize(domain.ActionCategoryCreate), c.CategoryHandler.CreateCategory)
	categories.Put("/:id", c.Middleware.Authorize(domain.ActionCategoryUpdate), c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.Middleware.Authorize(domain.ActionCategoryDelete), c.CategoryHandler.DeleteCategory)
}

func (c *Config) Subcategories(api fiber.Router) {
	subcategories := api.Group("/subcategories")
	subcategories.Get("", c.Middleware.Authorize(domain.ActionSubcategoryFind), c.SubcategoryHandler.GetSubcategories)
	subcategories.Get("/:id", c.Middleware.Authorize(domain.ActionSubcategoryFindOne), c.SubcategoryHandler.GetSubcategory)
	subcategories.Post("", c.Middleware.Authorize(domain.ActionSubcategoryCreate), c.SubcategoryHandler.CreateSubcategory)
	subcategories.Put("/:id", c.Middleware.Authorize(domain.ActionSubcategoryUpdate), c.SubcategoryHandler.UpdateSubcategory)
	subcategories.Delete("/:id", c.Middleware.Authorize(domain.ActionSubcategoryDelete), c.SubcategoryHandler.DeleteSubcategory)
}

func (c *Config) Reviews(api fiber.Router) {
	reviews := api.Group("/reviews")
	// public
	reviews.Get("/product/:productId", c.Middleware.Authorize(domain.ActionReviewFindByProd), c.ReviewHandler.GetReviewsByProduct)
	reviews.Post("/:id/helpful", c.Middleware.Authorize(domain.ActionReviewHelpful), c.ReviewHandler.MarkHelpful)
	// authenticated
	reviews.Post("", c.Middleware.Authorize(domain.ActionReviewCreate), c.ReviewHandler.CreateReview)
	reviews.Put("/:id", c.Middleware.Authorize(domain.ActionReviewUpdate), c.ReviewHandler.UpdateReview)
	reviews.Delete("/:id", c.Middleware.Authorize(domain.ActionReviewDelete), c.ReviewHandler.DeleteReview)
}

// Roles is admin only: no role but admin can be granted these routes.
func (c *Config) Roles(api fiber.Router) {
	roles := api.Group("/users-permissions/roles", c.Middleware.Authorize(permissionAdmin))
	roles.Get("", c.PermissionHandler.GetRoles)
	roles.Get("/:id", c.PermissionHandler.GetRole)
	roles.Put("/:id", c.PermissionHandler.UpdateRole)
}

const permissionAdmin = "plugin::users-permissions.role.admin"
