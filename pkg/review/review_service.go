package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodie-journal/domain"
	"foodie-journal/entities"
	"foodie-journal/internal/utils/storage"
	"foodie-journal/pkg/catalog"
	"foodie-journal/pkg/user"

	"github.com/google/uuid"
)

type (
	ReviewService interface {
		AddReview(ctx context.Context, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error)
		GetFoodReviews(ctx context.Context, foodID int) (domain.FoodReviewsResponse, error)
		GetAverageFoodRating(ctx context.Context, foodID int) (float64, error)
		AddShopReview(ctx context.Context, req domain.AddShopReviewRequest, userID string) (domain.ReviewResponse, error)
		GetShopReviews(ctx context.Context) (domain.FoodReviewsResponse, error)
		UploadReviewMedia(ctx context.Context, req domain.UploadReviewMediaRequest, userID string) (domain.UploadReviewMediaResponse, error)
	}

	reviewService struct {
		reviewRepository  ReviewRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewReviewService(reviewRepository ReviewRepository, catalogRepository catalog.CatalogRepository, userRepository user.UserRepository, s3 storage.AwsS3) ReviewService {
	return &reviewService{
		reviewRepository:  reviewRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

// AddReview is the only mutator of the review collection. The handler already
// validates the request shape, but the store checks its own invariants again:
// a rating outside 1..5, blank text, or a food ID outside the catalog never
// reaches the repository.
func (s *reviewService) AddReview(ctx context.Context, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return domain.ReviewResponse{}, domain.ErrEmptyReview
	}
	if _, ok := s.catalogRepository.GetFoodByID(req.FoodID); !ok {
		return domain.ReviewResponse{}, domain.ErrFoodNotFound
	}

	// the username is a denormalized copy taken at submission time, not a
	// live reference to the account
	submitter, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrUserNotFound
	}

	review := &entities.Review{
		ID:        uuid.New(),
		FoodID:    req.FoodID,
		Username:  submitter.Username,
		Rating:    req.Rating,
		Review:    text,
		MediaURL:  req.MediaURL,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return domain.ReviewResponse{
		ID:        review.ID.String(),
		FoodID:    review.FoodID,
		Username:  review.Username,
		Rating:    review.Rating,
		Review:    review.Review,
		MediaURL:  review.MediaURL,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetFoodReviews(ctx context.Context, foodID int) (domain.FoodReviewsResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByFoodID(ctx, foodID)
	if err != nil {
		return domain.FoodReviewsResponse{}, err
	}

	response := domain.FoodReviewsResponse{
		Reviews:     make([]domain.ReviewResponse, 0, len(reviews)),
		ReviewCount: len(reviews),
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		response.Reviews = append(response.Reviews, domain.ReviewResponse{
			ID:        r.ID.String(),
			FoodID:    r.FoodID,
			Username:  r.Username,
			Rating:    r.Rating,
			Review:    r.Review,
			MediaURL:  r.MediaURL,
			CreatedAt: r.CreatedAt,
		})
	}
	response.AverageRating = averageRating(sum, len(reviews))
	return response, nil
}

// GetAverageFoodRating returns the unrounded mean of the food's ratings,
// recomputed from the current rows on every call. A food with no reviews
// returns 0 — a sentinel, not a score. 0 is unreachable as a real mean since
// ratings are 1..5, so callers distinguish "no data" by the review count.
func (s *reviewService) GetAverageFoodRating(ctx context.Context, foodID int) (float64, error) {
	reviews, err := s.reviewRepository.GetReviewsByFoodID(ctx, foodID)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return averageRating(sum, len(reviews)), nil
}

func (s *reviewService) AddShopReview(ctx context.Context, req domain.AddShopReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}
	text := strings.TrimSpace(req.Review)
	if text == "" {
		return domain.ReviewResponse{}, domain.ErrEmptyReview
	}

	submitter, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrUserNotFound
	}

	review := &entities.ShopReview{
		ID:        uuid.New(),
		Username:  submitter.Username,
		Rating:    req.Rating,
		Review:    text,
		MediaURL:  req.MediaURL,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepository.CreateShopReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return domain.ReviewResponse{
		ID:        review.ID.String(),
		Username:  review.Username,
		Rating:    review.Rating,
		Review:    review.Review,
		MediaURL:  review.MediaURL,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetShopReviews(ctx context.Context) (domain.FoodReviewsResponse, error) {
	reviews, err := s.reviewRepository.GetShopReviews(ctx)
	if err != nil {
		return domain.FoodReviewsResponse{}, err
	}

	response := domain.FoodReviewsResponse{
		Reviews:     make([]domain.ReviewResponse, 0, len(reviews)),
		ReviewCount: len(reviews),
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		response.Reviews = append(response.Reviews, domain.ReviewResponse{
			ID:        r.ID.String(),
			Username:  r.Username,
			Rating:    r.Rating,
			Review:    r.Review,
			MediaURL:  r.MediaURL,
			CreatedAt: r.CreatedAt,
		})
	}
	response.AverageRating = averageRating(sum, len(reviews))
	return response, nil
}

func (s *reviewService) UploadReviewMedia(ctx context.Context, req domain.UploadReviewMediaRequest, userID string) (domain.UploadReviewMediaResponse, error) {
	fileName := fmt.Sprintf("review-media-%s-%s", userID, uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Media, "review-media", storage.AllowMedia...)
	if err != nil {
		return domain.UploadReviewMediaResponse{}, err
	}
	return domain.UploadReviewMediaResponse{
		MediaURL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}

func averageRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
