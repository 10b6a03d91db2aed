package favorite

import (
	"foodie-journal/domain"
	"foodie-journal/pkg/catalog"
)

type (
	FavoriteService interface {
		AddFavorite(userID string, foodID int)
		RemoveFavorite(userID string, foodID int)
		IsFavorite(userID string, foodID int) bool
		GetFavorites(userID string) []domain.FoodResponse
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		catalogRepository  catalog.CatalogRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, catalogRepository catalog.CatalogRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		catalogRepository:  catalogRepository,
	}
}

// AddFavorite resolves the food from the catalog and inserts it once. All
// favorite operations are total: an ID outside the catalog simply never
// matches anything, so the call is a no-op rather than an error.
func (s *favoriteService) AddFavorite(userID string, foodID int) {
	food, ok := s.catalogRepository.GetFoodByID(foodID)
	if !ok {
		return
	}
	s.favoriteRepository.Add(userID, food)
}

func (s *favoriteService) RemoveFavorite(userID string, foodID int) {
	s.favoriteRepository.Remove(userID, foodID)
}

func (s *favoriteService) IsFavorite(userID string, foodID int) bool {
	return s.favoriteRepository.Exists(userID, foodID)
}

// GetFavorites returns the user's favorites in insertion order.
func (s *favoriteService) GetFavorites(userID string) []domain.FoodResponse {
	foods := s.favoriteRepository.List(userID)

	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, domain.FoodResponse{
			ID:          food.ID,
			Name:        food.Name,
			Description: food.Description,
			Category:    food.Category,
			Image:       food.Image,
			Price:       food.Price,
			Stock:       food.Stock,
			StockStatus: food.StockStatus(),
		})
	}
	return response
}
