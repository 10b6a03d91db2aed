package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPromos  = "promos retrieved successfully"
	MessageSuccessClaimPromo = "promo claimed successfully"

	MessageFailedGetPromos  = "failed to retrieve promos"
	MessageFailedClaimPromo = "failed to claim promo"

	ErrPromoNotFound       = errors.New("promo not found")
	ErrPromoAlreadyClaimed = errors.New("promo already claimed")
)

type (
	ClaimPromoRequest struct {
		PromoID int `json:"promo_id" validate:"required,min=1"`
	}

	PromoResponse struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Discount    string `json:"discount"`
		FoodID      int    `json:"food_id,omitempty"`
	}

	ClaimPromoResponse struct {
		PromoID    int       `json:"promo_id"`
		PromoTitle string    `json:"promo_title"`
		ClaimedAt  time.Time `json:"claimed_at"`
	}
)
