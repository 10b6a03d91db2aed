package catalog

import (
	"testing"

	"foodie-journal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSearchFoodsByName(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	foods := service.SearchFoods("adobo", "All")
	assert.Len(t, foods, 1)
	assert.Equal(t, 1, foods[0].ID)
	assert.Equal(t, "Chicken Adobo", foods[0].Name)
}

func TestSearchFoodsIsCaseInsensitive(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	assert.Equal(t, service.SearchFoods("ADOBO", "All"), service.SearchFoods("adobo", "All"))
	assert.Len(t, service.SearchFoods("LuMpIa", "All"), 1)
}

func TestSearchFoodsEmptyQueryMatchesEverything(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	foods := service.SearchFoods("", "All")
	assert.Len(t, foods, 8)
}

func TestSearchFoodsByCategory(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	foods := service.SearchFoods("", "Dessert")
	assert.Len(t, foods, 2)
	// catalog order is preserved
	assert.Equal(t, "Halo-Halo", foods[0].Name)
	assert.Equal(t, "Leche Flan", foods[1].Name)
}

func TestSearchFoodsCombinesQueryAndCategory(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	foods := service.SearchFoods("halo", "Dessert")
	assert.Len(t, foods, 1)
	assert.Equal(t, "Halo-Halo", foods[0].Name)

	foods = service.SearchFoods("adobo", "Dessert")
	assert.Empty(t, foods)
}

func TestSearchFoodsNoMatch(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	assert.Empty(t, service.SearchFoods("sisig", "All"))
}

func TestGetFoodByID(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	food, err := service.GetFoodByID(3)
	assert.NoError(t, err)
	assert.Equal(t, "Lumpia", food.Name)
	assert.Equal(t, "Appetizer", food.Category)

	_, err = service.GetFoodByID(99)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	_, err = service.GetFoodByID(-1)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestStockStatusDerivation(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	haloHalo, err := service.GetFoodByID(6)
	assert.NoError(t, err)
	assert.Equal(t, "Out of Stock", haloHalo.StockStatus)

	sinigang, err := service.GetFoodByID(4)
	assert.NoError(t, err)
	assert.Equal(t, "Low Stock", sinigang.StockStatus)

	lumpia, err := service.GetFoodByID(3)
	assert.NoError(t, err)
	assert.Equal(t, "In Stock", lumpia.StockStatus)
}

func TestCategories(t *testing.T) {
	service := NewCatalogService(NewCatalogRepository())

	assert.Equal(t, []string{"All", "Main Course", "Noodles", "Appetizer", "Soup", "Dessert"}, service.Categories())
}
