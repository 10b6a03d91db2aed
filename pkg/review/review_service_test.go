package review

import (
	"context"
	"sort"
	"testing"
	"time"

	"foodie-journal/domain"
	"foodie-journal/entities"
	"foodie-journal/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeReviewRepository struct {
	reviews     []entities.Review
	shopReviews []entities.ShopReview
}

func (f *fakeReviewRepository) CreateReview(_ context.Context, review *entities.Review) error {
	review.Seq = int64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepository) GetReviewsByFoodID(_ context.Context, foodID int) ([]entities.Review, error) {
	var out []entities.Review
	for _, r := range f.reviews {
		if r.FoodID == foodID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeReviewRepository) CreateShopReview(_ context.Context, review *entities.ShopReview) error {
	review.Seq = int64(len(f.shopReviews) + 1)
	f.shopReviews = append(f.shopReviews, *review)
	return nil
}

func (f *fakeReviewRepository) GetShopReviews(_ context.Context) ([]entities.ShopReview, error) {
	out := make([]entities.ShopReview, len(f.shopReviews))
	copy(out, f.shopReviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsernameOrEmail(_ context.Context, usernameOrEmail string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func newTestService() (ReviewService, *fakeReviewRepository, string) {
	repo := &fakeReviewRepository{}
	alice := &entities.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	users := &fakeUserRepository{users: map[string]*entities.User{alice.ID.String(): alice}}
	service := NewReviewService(repo, catalog.NewCatalogRepository(), users, nil)
	return service, repo, alice.ID.String()
}

func TestAddReviewRejectsInvalidRating(t *testing.T) {
	service, repo, alice := newTestService()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := service.AddReview(context.Background(), domain.AddReviewRequest{
			FoodID: 1,
			Rating: rating,
			Review: "Great!",
		}, alice)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
	assert.Empty(t, repo.reviews)
}

func TestAddReviewRejectsEmptyText(t *testing.T) {
	service, repo, alice := newTestService()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := service.AddReview(context.Background(), domain.AddReviewRequest{
			FoodID: 1,
			Rating: 5,
			Review: text,
		}, alice)
		assert.ErrorIs(t, err, domain.ErrEmptyReview)
	}
	assert.Empty(t, repo.reviews)
}

func TestAddReviewRejectsUnknownFood(t *testing.T) {
	service, repo, alice := newTestService()

	_, err := service.AddReview(context.Background(), domain.AddReviewRequest{
		FoodID: 99,
		Rating: 5,
		Review: "Great!",
	}, alice)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.Empty(t, repo.reviews)
}

func TestAddReviewDenormalizesUsername(t *testing.T) {
	service, _, alice := newTestService()

	res, err := service.AddReview(context.Background(), domain.AddReviewRequest{
		FoodID: 3,
		Rating: 5,
		Review: "Great!",
	}, alice)
	assert.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, 3, res.FoodID)
	assert.Equal(t, 5, res.Rating)
	assert.NotEmpty(t, res.ID)

	reviews, err := service.GetFoodReviews(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, reviews.ReviewCount)
	assert.Equal(t, "alice", reviews.Reviews[0].Username)

	avg, err := service.GetAverageFoodRating(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, avg)
}

func TestAddReviewTrimsText(t *testing.T) {
	service, _, alice := newTestService()

	res, err := service.AddReview(context.Background(), domain.AddReviewRequest{
		FoodID: 1,
		Rating: 4,
		Review: "  masarap!  ",
	}, alice)
	assert.NoError(t, err)
	assert.Equal(t, "masarap!", res.Review)
}

func TestAverageRatingIsZeroSentinelWithoutReviews(t *testing.T) {
	service, _, _ := newTestService()

	avg, err := service.GetAverageFoodRating(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	reviews, err := service.GetFoodReviews(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, reviews.ReviewCount)
}

func TestAverageRatingIsUnroundedMean(t *testing.T) {
	service, _, alice := newTestService()

	for _, rating := range []int{4, 5} {
		_, err := service.AddReview(context.Background(), domain.AddReviewRequest{
			FoodID: 2,
			Rating: rating,
			Review: "ok",
		}, alice)
		assert.NoError(t, err)
	}

	avg, err := service.GetAverageFoodRating(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, avg)

	_, err = service.AddReview(context.Background(), domain.AddReviewRequest{
		FoodID: 2,
		Rating: 4,
		Review: "ok",
	}, alice)
	assert.NoError(t, err)

	avg, err = service.GetAverageFoodRating(context.Background(), 2)
	assert.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, avg, 1e-9)
}

func TestGetFoodReviewsMostRecentFirst(t *testing.T) {
	service, repo, _ := newTestService()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.reviews = []entities.Review{
		{ID: uuid.New(), FoodID: 1, Username: "a", Rating: 5, Review: "first", CreatedAt: base},
		{ID: uuid.New(), FoodID: 1, Username: "b", Rating: 4, Review: "second", CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), FoodID: 2, Username: "c", Rating: 3, Review: "other food", CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.New(), FoodID: 1, Username: "d", Rating: 2, Review: "tied-early", CreatedAt: base.Add(time.Hour)},
	}

	reviews, err := service.GetFoodReviews(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, reviews.ReviewCount)
	assert.Equal(t, "second", reviews.Reviews[0].Review)
	// tied timestamps keep insertion order
	assert.Equal(t, "tied-early", reviews.Reviews[1].Review)
	assert.Equal(t, "first", reviews.Reviews[2].Review)
}

func TestShopReviewValidation(t *testing.T) {
	service, repo, alice := newTestService()

	_, err := service.AddShopReview(context.Background(), domain.AddShopReviewRequest{Rating: 0, Review: "hi"}, alice)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = service.AddShopReview(context.Background(), domain.AddShopReviewRequest{Rating: 3, Review: "  "}, alice)
	assert.ErrorIs(t, err, domain.ErrEmptyReview)

	assert.Empty(t, repo.shopReviews)
}

func TestShopReviewAggregation(t *testing.T) {
	service, _, alice := newTestService()

	for _, rating := range []int{5, 4, 4} {
		_, err := service.AddShopReview(context.Background(), domain.AddShopReviewRequest{
			Rating: rating,
			Review: "solid carenderia",
		}, alice)
		assert.NoError(t, err)
	}

	res, err := service.GetShopReviews(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.ReviewCount)
	assert.InDelta(t, 13.0/3.0, res.AverageRating, 1e-9)
}

func TestAddReviewUnknownUserRejected(t *testing.T) {
	service, repo, _ := newTestService()

	_, err := service.AddReview(context.Background(), domain.AddReviewRequest{
		FoodID: 1,
		Rating: 5,
		Review: "hi",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, repo.reviews)
}
