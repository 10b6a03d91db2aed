package favorite

import (
	"sync"

	"foodie-journal/entities"
)

type (
	// FavoriteRepository keeps each user's favorited foods in memory for the
	// lifetime of the process. Favorites are session-scoped by design and are
	// not persisted across restarts. Insertion order is preserved for listing.
	FavoriteRepository interface {
		Add(userID string, food entities.Food)
		Remove(userID string, foodID int)
		Exists(userID string, foodID int) bool
		List(userID string) []entities.Food
	}

	favoriteRepository struct {
		mu        sync.RWMutex
		favorites map[string][]entities.Food
	}
)

func NewFavoriteRepository() FavoriteRepository {
	return &favoriteRepository{
		favorites: make(map[string][]entities.Food),
	}
}

// Add is idempotent: at most one entry per food ID.
func (r *favoriteRepository) Add(userID string, food entities.Food) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites[userID] {
		if f.ID == food.ID {
			return
		}
	}
	r.favorites[userID] = append(r.favorites[userID], food)
}

// Remove is a no-op when the food is not favorited.
func (r *favoriteRepository) Remove(userID string, foodID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	foods := r.favorites[userID]
	for i, f := range foods {
		if f.ID == foodID {
			r.favorites[userID] = append(foods[:i], foods[i+1:]...)
			return
		}
	}
}

func (r *favoriteRepository) Exists(userID string, foodID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.favorites[userID] {
		if f.ID == foodID {
			return true
		}
	}
	return false
}

func (r *favoriteRepository) List(userID string) []entities.Food {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foods := make([]entities.Food, len(r.favorites[userID]))
	copy(foods, r.favorites[userID])
	return foods
}
