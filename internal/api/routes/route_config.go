package routes

import (
	"foodie-journal/internal/api/handlers"
	"foodie-journal/internal/middleware"
	"foodie-journal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	ReviewHandler   handlers.ReviewHandler
	FavoriteHandler handlers.FavoriteHandler
	PromoHandler    handlers.PromoHandler
	PageHandler     handlers.PageHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Reviews()
	c.Favorites()
	c.Promos()
	c.Pages()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/profile-picture", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfilePicture)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

// Foods is public: browsing the feed and dish details needs no session.
func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods")
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/categories", c.FoodHandler.GetCategories)
	foods.Get("/:id", c.FoodHandler.GetFoodDetail)
	foods.Get("/:id/reviews", c.ReviewHandler.GetFoodReviews)
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")
	reviews.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.AddReview)
	reviews.Post("/media", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.UploadReviewMedia)
	reviews.Get("/shop", c.ReviewHandler.GetShopReviews)
	reviews.Post("/shop", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.AddShopReview)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Post("", c.FavoriteHandler.AddFavorite)
	favorites.Get("/:id", c.FavoriteHandler.GetFavoriteStatus)
	favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
}

// Promos lists publicly; claiming sits behind the login wall.
func (c *Config) Promos() {
	promos := c.App.Group("/api/v1/promos")
	promos.Get("", c.PromoHandler.GetPromos)
	promos.Post("/claim", c.Middleware.AuthMiddleware(c.JWTService), c.PromoHandler.ClaimPromo)
}

func (c *Config) Pages() {
	pages := c.App.Group("/api/v1/pages")
	pages.Get("/faq", c.PageHandler.FAQ)
	pages.Get("/privacy-policy", c.PageHandler.PrivacyPolicy)
	pages.Get("/terms", c.PageHandler.TermsAndConditions)
	pages.Get("/about", c.PageHandler.About)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
