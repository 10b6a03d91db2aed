package catalog

import "foodie-journal/entities"

type (
	// CatalogRepository serves the compiled-in menu. The catalog is immutable
	// at runtime; nothing creates, mutates, or deletes a Food.
	CatalogRepository interface {
		GetFoods() []entities.Food
		GetFoodByID(id int) (entities.Food, bool)
		Categories() []string
	}

	catalogRepository struct {
		foods      []entities.Food
		categories []string
	}
)

var sampleFoods = []entities.Food{
	{
		ID:          1,
		Name:        "Chicken Adobo",
		Description: "Classic Filipino dish with soy sauce and vinegar",
		Image:       "assets/images/adobo.jpg",
		Category:    "Main Course",
		Price:       120,
		Stock:       25,
	},
	{
		ID:          2,
		Name:        "Pancit Canton",
		Description: "Stir-fried noodles with vegetables",
		Image:       "assets/images/pancit-canton2.jpg",
		Category:    "Noodles",
		Price:       95,
		Stock:       18,
	},
	{
		ID:          3,
		Name:        "Lumpia",
		Description: "Filipino spring rolls",
		Image:       "assets/images/lumpia.jpg",
		Category:    "Appetizer",
		Price:       60,
		Stock:       40,
	},
	{
		ID:          4,
		Name:        "Sinigang",
		Description: "Sour tamarind soup",
		Image:       "assets/images/sinigang.jpg",
		Category:    "Soup",
		Price:       150,
		Stock:       7,
	},
	{
		ID:          5,
		Name:        "Tinola",
		Description: "Filipino chicken ginger soup",
		Image:       "assets/images/tinola.jpg",
		Category:    "Main Course",
		Price:       140,
		Stock:       12,
	},
	{
		ID:          6,
		Name:        "Halo-Halo",
		Description: "Mixed dessert with shaved ice",
		Image:       "assets/images/halohalo.jpg",
		Category:    "Dessert",
		Price:       85,
		Stock:       0,
	},
	{
		ID:          7,
		Name:        "Siomai",
		Description: "Filipino-style steamed dumpling",
		Image:       "assets/images/siomai.jpg",
		Category:    "Appetizer",
		Price:       50,
		Stock:       30,
	},
	{
		ID:          8,
		Name:        "Leche Flan",
		Description: "Rich and creamy Filipino caramel custard dessert",
		Image:       "assets/images/leche.jpg",
		Category:    "Dessert",
		Price:       70,
		Stock:       9,
	},
}

var sampleCategories = []string{"All", "Main Course", "Noodles", "Appetizer", "Soup", "Dessert"}

func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{
		foods:      sampleFoods,
		categories: sampleCategories,
	}
}

func (r *catalogRepository) GetFoods() []entities.Food {
	foods := make([]entities.Food, len(r.foods))
	copy(foods, r.foods)
	return foods
}

func (r *catalogRepository) GetFoodByID(id int) (entities.Food, bool) {
	for _, food := range r.foods {
		if food.ID == id {
			return food, true
		}
	}
	return entities.Food{}, false
}

func (r *catalogRepository) Categories() []string {
	categories := make([]string, len(r.categories))
	copy(categories, r.categories)
	return categories
}
