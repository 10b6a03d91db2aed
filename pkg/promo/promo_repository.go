package promo

import (
	"context"

	"foodie-journal/entities"

	"gorm.io/gorm"
)

type (
	PromoRepository interface {
		GetPromos() []entities.Promo
		GetPromoByID(id int) (entities.Promo, bool)
		CreateClaim(ctx context.Context, claim *entities.PromoClaim) error
		ClaimExists(ctx context.Context, userID string, promoID int) (bool, error)
	}

	promoRepository struct {
		db *gorm.DB
	}
)

// The promo list ships with the build, like the catalog. Only claims are
// persisted.
var samplePromos = []entities.Promo{
	{
		ID:          1,
		Title:       "Adobo Monday",
		Description: "Every Monday, Chicken Adobo with free rice refill",
		Discount:    "20% off",
		FoodID:      1,
	},
	{
		ID:          2,
		Title:       "Merienda Pair",
		Description: "Lumpia and Siomai snack pair for the afternoon crowd",
		Discount:    "Buy 1 Take 1",
		FoodID:      3,
	},
	{
		ID:          3,
		Title:       "Leche Flan Promo",
		Description: "A free Leche Flan slice with any Main Course order",
		Discount:    "Free dessert",
		FoodID:      8,
	},
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) GetPromos() []entities.Promo {
	promos := make([]entities.Promo, len(samplePromos))
	copy(promos, samplePromos)
	return promos
}

func (r *promoRepository) GetPromoByID(id int) (entities.Promo, bool) {
	for _, promo := range samplePromos {
		if promo.ID == id {
			return promo, true
		}
	}
	return entities.Promo{}, false
}

func (r *promoRepository) CreateClaim(ctx context.Context, claim *entities.PromoClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *promoRepository) ClaimExists(ctx context.Context, userID string, promoID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.PromoClaim{}).
		Where("user_id = ? AND promo_id = ?", userID, promoID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
