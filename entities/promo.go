package entities

import (
	"time"

	"github.com/google/uuid"
)

// Promo is a compiled-in offer, not a table row.
type Promo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	FoodID      int    `json:"food_id,omitempty"`
}

type PromoClaim struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index:idx_user_promo,unique" json:"user_id"`
	PromoID   int       `gorm:"index:idx_user_promo,unique" json:"promo_id"`
	ClaimedAt time.Time `gorm:"type:timestamp" json:"claimed_at"`

	User *User `gorm:"foreignKey:UserID"`
}
