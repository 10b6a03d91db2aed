package catalog

import (
	"strings"

	"foodie-journal/domain"
)

const CategoryAll = "All"

type (
	CatalogService interface {
		SearchFoods(query, category string) []domain.FoodResponse
		GetFoodByID(id int) (domain.FoodResponse, error)
		Categories() []string
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

// SearchFoods is the feed query: case-insensitive substring match on the name
// combined with an exact category filter. An empty query matches everything,
// "All" disables the category filter, and catalog order is preserved. There is
// no ranking, it is a pure filter recomputed per call.
func (s *catalogService) SearchFoods(query, category string) []domain.FoodResponse {
	needle := strings.ToLower(query)

	response := make([]domain.FoodResponse, 0)
	for _, food := range s.catalogRepository.GetFoods() {
		if !strings.Contains(strings.ToLower(food.Name), needle) {
			continue
		}
		if category != "" && category != CategoryAll && food.Category != category {
			continue
		}
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

func (s *catalogService) GetFoodByID(id int) (domain.FoodResponse, error) {
	food, ok := s.catalogRepository.GetFoodByID(id)
	if !ok {
		return domain.FoodResponse{}, domain.ErrFoodNotFound
	}
	return domain.FoodResponse{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Category:    food.Category,
		Image:       food.Image,
		Price:       food.Price,
		Stock:       food.Stock,
		StockStatus: food.StockStatus(),
	}, nil
}

func (s *catalogService) Categories() []string {
	return s.catalogRepository.Categories()
}
