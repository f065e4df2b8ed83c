package config

import (
	"time"

	"Go-Storefront/internal/api/handlers"
	"Go-Storefront/internal/api/presenters"
	"Go-Storefront/internal/api/routes"
	"Go-Storefront/internal/middleware"
	"Go-Storefront/internal/utils"
	"Go-Storefront/internal/utils/logger"
	"Go-Storefront/internal/utils/mailing"
	"Go-Storefront/internal/utils/metrics"
	"Go-Storefront/internal/utils/storage"
	"Go-Storefront/pkg/category"
	"Go-Storefront/pkg/jwt"
	"Go-Storefront/pkg/permission"
	"Go-Storefront/pkg/product"
	"Go-Storefront/pkg/review"
	"Go-Storefront/pkg/subcategory"
	"Go-Storefront/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "storefront",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return presenters.ErrorResponse(c, code, err.Error(), nil)
		},
	})
	validator := utils.Validate

	// setting up logging and limiter
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfigDefault("DB_TIMEZONE", "Asia/Jakarta"),
		Output:     logger.Writer(),
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        cast.ToInt(utils.GetConfigDefault("RATE_LIMIT_MAX", "50")),
		Expiration: 1 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, "too many requests", nil)
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	productRepository := product.NewProductRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	subcategoryRepository := subcategory.NewSubcategoryRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	userRepository := user.NewUserRepository(db)
	permissionRepository := permission.NewPermissionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	productService := product.NewProductService(productRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	subcategoryService := subcategory.NewSubcategoryService(subcategoryRepository)
	reviewService := review.NewReviewService(reviewRepository, mailer, utils.GetConfig("REVIEW_NOTIFY_EMAIL"))
	userService := user.NewUserService(userRepository, jwtService)
	permissionService := permission.NewPermissionService(permissionRepository)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	subcategoryHandler := handlers.NewSubcategoryHandler(subcategoryService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	permissionHandler := handlers.NewPermissionHandler(permissionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		ProductHandler:     productHandler,
		CategoryHandler:    categoryHandler,
		SubcategoryHandler: subcategoryHandler,
		ReviewHandler:      reviewHandler,
		UserHandler:        userHandler,
		PermissionHandler:  permissionHandler,
		Middleware:         middleware.NewMiddleware(jwtService, permissionService, userService),
	}
	routesConfig.Setup()
	return app, nil
}
