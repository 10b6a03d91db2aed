package promo

import (
	"context"
	"time"

	"foodie-journal/domain"
	"foodie-journal/entities"

	"github.com/google/uuid"
)

type (
	PromoService interface {
		GetPromos(ctx context.Context) []domain.PromoResponse
		ClaimPromo(ctx context.Context, req domain.ClaimPromoRequest, userID string) (domain.ClaimPromoResponse, error)
	}

	promoService struct {
		promoRepository PromoRepository
	}
)

func NewPromoService(promoRepository PromoRepository) PromoService {
	return &promoService{promoRepository: promoRepository}
}

func (s *promoService) GetPromos(_ context.Context) []domain.PromoResponse {
	promos := s.promoRepository.GetPromos()

	response := make([]domain.PromoResponse, 0, len(promos))
	for _, promo := range promos {
		response = append(response, domain.PromoResponse{
			ID:          promo.ID,
			Title:       promo.Title,
			Description: promo.Description,
			Discount:    promo.Discount,
			FoodID:      promo.FoodID,
		})
	}
	return response
}

// ClaimPromo records a claim behind the login wall. One claim per user and
// promo; claiming again reports ErrPromoAlreadyClaimed.
func (s *promoService) ClaimPromo(ctx context.Context, req domain.ClaimPromoRequest, userID string) (domain.ClaimPromoResponse, error) {
	promo, ok := s.promoRepository.GetPromoByID(req.PromoID)
	if !ok {
		return domain.ClaimPromoResponse{}, domain.ErrPromoNotFound
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ClaimPromoResponse{}, domain.ErrParseUUID
	}

	claimed, err := s.promoRepository.ClaimExists(ctx, userID, promo.ID)
	if err != nil {
		return domain.ClaimPromoResponse{}, err
	}
	if claimed {
		return domain.ClaimPromoResponse{}, domain.ErrPromoAlreadyClaimed
	}

	claim := &entities.PromoClaim{
		ID:        uuid.New(),
		UserID:    userUUID,
		PromoID:   promo.ID,
		ClaimedAt: time.Now(),
	}
	if err := s.promoRepository.CreateClaim(ctx, claim); err != nil {
		return domain.ClaimPromoResponse{}, err
	}

	return domain.ClaimPromoResponse{
		PromoID:    promo.ID,
		PromoTitle: promo.Title,
		ClaimedAt:  claim.ClaimedAt,
	}, nil
}
