package entities

import (
	"time"

	"github.com/google/uuid"
)

// Review is a food review. FoodID points into the compiled-in catalog, not a
// table, so there is no foreign key on it; the catalog never changes at runtime.
// Seq orders rows that share a created_at timestamp by insertion.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	FoodID    int       `gorm:"index" json:"food_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	MediaURL  string    `json:"media_url,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

// ShopReview rates the carenderia itself rather than a single dish.
type ShopReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	MediaURL  string    `json:"media_url,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}
