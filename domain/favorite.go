package domain

var (
	MessageSuccessAddFavorite    = "food added to favorites"
	MessageSuccessRemoveFavorite = "food removed from favorites"
	MessageSuccessGetFavorites   = "favorites retrieved successfully"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to retrieve favorites"
)

type (
	AddFavoriteRequest struct {
		FoodID int `json:"food_id" validate:"required,min=1"`
	}

	FavoriteStatusResponse struct {
		FoodID     int  `json:"food_id"`
		IsFavorite bool `json:"is_favorite"`
	}
)
