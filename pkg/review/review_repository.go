package review

import (
	"context"

	"foodie-journal/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewsByFoodID(ctx context.Context, foodID int) ([]entities.Review, error)
		CreateShopReview(ctx context.Context, review *entities.ShopReview) error
		GetShopReviews(ctx context.Context) ([]entities.ShopReview, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetReviewsByFoodID returns reviews most-recent-first; rows sharing a
// timestamp keep their insertion order via the seq column.
func (r *reviewRepository) GetReviewsByFoodID(ctx context.Context, foodID int) ([]entities.Review, error) {
	var reviews []entities.Review
	if err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at desc, seq asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CreateShopReview(ctx context.Context, review *entities.ShopReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetShopReviews(ctx context.Context) ([]entities.ShopReview, error) {
	var reviews []entities.ShopReview
	if err := r.db.WithContext(ctx).
		Order("created_at desc, seq asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
