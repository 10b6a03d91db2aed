package domain

import "errors"

var (
	MessageSuccessGetFoods      = "foods retrieved successfully"
	MessageSuccessGetFoodDetail = "food detail retrieved successfully"
	MessageSuccessGetCategories = "categories retrieved successfully"

	MessageFailedGetFoods      = "failed to retrieve foods"
	MessageFailedGetFoodDetail = "failed to retrieve food detail"

	ErrFoodNotFound = errors.New("food not found")
)

type (
	FoodResponse struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
		StockStatus string  `json:"stock_status"`
	}

	// FoodDetailResponse is the feed card plus the rating aggregate a detail
	// screen shows. AverageRating is 0 when ReviewCount is 0; check the count
	// before treating it as a score.
	FoodDetailResponse struct {
		FoodResponse
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int     `json:"review_count"`
		IsFavorite    bool    `json:"is_favorite"`
	}
)
