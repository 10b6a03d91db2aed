package config

import (
	"os"
	"time"

	"foodie-journal/internal/api/handlers"
	"foodie-journal/internal/api/routes"
	"foodie-journal/internal/middleware"
	"foodie-journal/internal/utils"
	"foodie-journal/internal/utils/storage"
	"foodie-journal/pkg/catalog"
	"foodie-journal/pkg/favorite"
	"foodie-journal/pkg/jwt"
	"foodie-journal/pkg/promo"
	"foodie-journal/pkg/review"
	"foodie-journal/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Manila",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	catalogRepository := catalog.NewCatalogRepository()
	userRepository := user.NewUserRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository()
	promoRepository := promo.NewPromoRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	authProvider := user.NewStubAuthProvider()
	catalogService := catalog.NewCatalogService(catalogRepository)
	userService := user.NewUserService(userRepository, authProvider, jwtService, s3)
	reviewService := review.NewReviewService(reviewRepository, catalogRepository, userRepository, s3)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, catalogRepository)
	promoService := promo.NewPromoService(promoRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(catalogService, reviewService, favoriteService)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	promoHandler := handlers.NewPromoHandler(promoService, validator)
	pageHandler := handlers.NewPageHandler()

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		ReviewHandler:   reviewHandler,
		FavoriteHandler: favoriteHandler,
		PromoHandler:    promoHandler,
		PageHandler:     pageHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
