package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddReview      = "review submitted successfully"
	MessageSuccessGetReviews     = "reviews retrieved successfully"
	MessageSuccessAddShopReview  = "shop review submitted successfully"
	MessageSuccessGetShopReviews = "shop reviews retrieved successfully"
	MessageSuccessUploadMedia    = "review media uploaded successfully"

	MessageFailedAddReview      = "failed to submit review"
	MessageFailedGetReviews     = "failed to retrieve reviews"
	MessageFailedAddShopReview  = "failed to submit shop review"
	MessageFailedGetShopReviews = "failed to retrieve shop reviews"
	MessageFailedUploadMedia    = "failed to upload review media"

	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyReview   = errors.New("review text must not be empty")
)

type (
	AddReviewRequest struct {
		FoodID   int    `json:"food_id" validate:"required,min=1"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Review   string `json:"review" validate:"required"`
		MediaURL string `json:"media_url" validate:"omitempty,url"`
	}

	AddShopReviewRequest struct {
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Review   string `json:"review" validate:"required"`
		MediaURL string `json:"media_url" validate:"omitempty,url"`
	}

	UploadReviewMediaRequest struct {
		Media *multipart.FileHeader `json:"media" form:"media" validate:"required"`
	}

	UploadReviewMediaResponse struct {
		MediaURL string `json:"media_url"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		FoodID    int       `json:"food_id,omitempty"`
		Username  string    `json:"username"`
		Rating    int       `json:"rating"`
		Review    string    `json:"review"`
		MediaURL  string    `json:"media_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	// FoodReviewsResponse bundles the list with the aggregate so clients never
	// read the 0 average as a score when the list is empty.
	FoodReviewsResponse struct {
		Reviews       []ReviewResponse `json:"reviews"`
		AverageRating float64          `json:"average_rating"`
		ReviewCount   int              `json:"review_count"`
	}
)
