package handlers

import (
	"strconv"

	"foodie-journal/domain"
	"foodie-journal/internal/api/presenters"
	"foodie-journal/pkg/catalog"
	"foodie-journal/pkg/favorite"
	"foodie-journal/pkg/review"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodDetail(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	foodHandler struct {
		catalogService  catalog.CatalogService
		reviewService   review.ReviewService
		favoriteService favorite.FavoriteService
	}
)

func NewFoodHandler(catalogService catalog.CatalogService, reviewService review.ReviewService, favoriteService favorite.FavoriteService) FoodHandler {
	return &foodHandler{
		catalogService:  catalogService,
		reviewService:   reviewService,
		favoriteService: favoriteService,
	}
}

// GetFoods is the feed: ?q= searches names, ?category= filters, both optional.
func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	query := c.Query("q", "")
	category := c.Query("category", catalog.CategoryAll)

	foods := h.catalogService.SearchFoods(query, category)
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodDetail, err)
	}

	food, err := h.catalogService.GetFoodByID(id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodDetail, err)
	}

	avg, err := h.reviewService.GetAverageFoodRating(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodDetail, err)
	}
	reviews, err := h.reviewService.GetFoodReviews(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodDetail, err)
	}

	detail := domain.FoodDetailResponse{
		FoodResponse:  food,
		AverageRating: avg,
		ReviewCount:   reviews.ReviewCount,
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		detail.IsFavorite = h.favoriteService.IsFavorite(userID, id)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessGetFoodDetail)
}

func (h *foodHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.catalogService.Categories(), fiber.StatusOK, domain.MessageSuccessGetCategories)
}
