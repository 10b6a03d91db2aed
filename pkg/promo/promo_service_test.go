package promo

import (
	"context"
	"fmt"
	"testing"

	"foodie-journal/domain"
	"foodie-journal/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePromoRepository struct {
	claims []entities.PromoClaim
}

func (f *fakePromoRepository) GetPromos() []entities.Promo {
	return NewPromoRepository(nil).GetPromos()
}

func (f *fakePromoRepository) GetPromoByID(id int) (entities.Promo, bool) {
	return NewPromoRepository(nil).GetPromoByID(id)
}

func (f *fakePromoRepository) CreateClaim(_ context.Context, claim *entities.PromoClaim) error {
	for _, c := range f.claims {
		if c.UserID == claim.UserID && c.PromoID == claim.PromoID {
			return fmt.Errorf("duplicate claim for user %s promo %d", claim.UserID, claim.PromoID)
		}
	}
	f.claims = append(f.claims, *claim)
	return nil
}

func (f *fakePromoRepository) ClaimExists(_ context.Context, userID string, promoID int) (bool, error) {
	for _, c := range f.claims {
		if c.UserID.String() == userID && c.PromoID == promoID {
			return true, nil
		}
	}
	return false, nil
}

func TestGetPromosListsAllPromos(t *testing.T) {
	service := NewPromoService(&fakePromoRepository{})

	promos := service.GetPromos(context.Background())
	assert.Len(t, promos, 3)
	assert.Equal(t, "Adobo Monday", promos[0].Title)
	assert.Equal(t, "Leche Flan Promo", promos[2].Title)
	assert.Equal(t, 8, promos[2].FoodID)
}

func TestClaimPromo(t *testing.T) {
	repo := &fakePromoRepository{}
	service := NewPromoService(repo)
	userID := uuid.NewString()

	res, err := service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 2}, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.PromoID)
	assert.Equal(t, "Merienda Pair", res.PromoTitle)
	assert.False(t, res.ClaimedAt.IsZero())
	assert.Len(t, repo.claims, 1)
}

func TestClaimPromoTwiceRejected(t *testing.T) {
	repo := &fakePromoRepository{}
	service := NewPromoService(repo)
	userID := uuid.NewString()

	_, err := service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 1}, userID)
	assert.NoError(t, err)

	_, err = service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 1}, userID)
	assert.ErrorIs(t, err, domain.ErrPromoAlreadyClaimed)
	assert.Len(t, repo.claims, 1)
}

func TestClaimPromoPerUser(t *testing.T) {
	repo := &fakePromoRepository{}
	service := NewPromoService(repo)

	_, err := service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 3}, uuid.NewString())
	assert.NoError(t, err)

	// a different user can still claim the same promo
	_, err = service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 3}, uuid.NewString())
	assert.NoError(t, err)
	assert.Len(t, repo.claims, 2)
}

func TestClaimUnknownPromo(t *testing.T) {
	repo := &fakePromoRepository{}
	service := NewPromoService(repo)

	_, err := service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 42}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPromoNotFound)
	assert.Empty(t, repo.claims)
}

func TestClaimPromoMalformedUserID(t *testing.T) {
	repo := &fakePromoRepository{}
	service := NewPromoService(repo)

	_, err := service.ClaimPromo(context.Background(), domain.ClaimPromoRequest{PromoID: 1}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
	assert.Empty(t, repo.claims)
}
