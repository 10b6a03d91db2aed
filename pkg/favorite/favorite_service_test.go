package favorite

import (
	"testing"

	"foodie-journal/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

func newTestService() FavoriteService {
	return NewFavoriteService(NewFavoriteRepository(), catalog.NewCatalogRepository())
}

func TestFavoriteLifecycle(t *testing.T) {
	service := newTestService()

	assert.False(t, service.IsFavorite("alice", 1))

	service.AddFavorite("alice", 1)
	assert.True(t, service.IsFavorite("alice", 1))

	service.RemoveFavorite("alice", 1)
	assert.False(t, service.IsFavorite("alice", 1))
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 2)
	service.AddFavorite("alice", 2)

	favorites := service.GetFavorites("alice")
	assert.Len(t, favorites, 1)
	assert.Equal(t, 2, favorites[0].ID)
}

func TestGetFavoritesPreservesInsertionOrder(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 5)
	service.AddFavorite("alice", 1)
	service.AddFavorite("alice", 8)

	favorites := service.GetFavorites("alice")
	assert.Len(t, favorites, 3)
	assert.Equal(t, 5, favorites[0].ID)
	assert.Equal(t, 1, favorites[1].ID)
	assert.Equal(t, 8, favorites[2].ID)
}

func TestRemoveFavoriteAbsentIsNoOp(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 1)
	service.RemoveFavorite("alice", 7)

	assert.Len(t, service.GetFavorites("alice"), 1)
}

func TestAddFavoriteUnknownFoodNeverMatches(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 99)
	service.AddFavorite("alice", -5)

	assert.Empty(t, service.GetFavorites("alice"))
	assert.False(t, service.IsFavorite("alice", 99))
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 1)
	service.AddFavorite("bob", 2)

	assert.True(t, service.IsFavorite("alice", 1))
	assert.False(t, service.IsFavorite("bob", 1))
	assert.Len(t, service.GetFavorites("bob"), 1)
}

func TestFavoriteResponseCarriesStockStatus(t *testing.T) {
	service := newTestService()

	service.AddFavorite("alice", 6)
	favorites := service.GetFavorites("alice")
	assert.Len(t, favorites, 1)
	assert.Equal(t, "Out of Stock", favorites[0].StockStatus)
}
