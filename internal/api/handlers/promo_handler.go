package handlers

import (
	"errors"

	"foodie-journal/domain"
	"foodie-journal/internal/api/presenters"
	"foodie-journal/pkg/promo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PromoHandler interface {
		GetPromos(c *fiber.Ctx) error
		ClaimPromo(c *fiber.Ctx) error
	}

	promoHandler struct {
		promoService promo.PromoService
		validator    *validator.Validate
	}
)

func NewPromoHandler(promoService promo.PromoService, validator *validator.Validate) PromoHandler {
	return &promoHandler{
		promoService: promoService,
		validator:    validator,
	}
}

func (h *promoHandler) GetPromos(c *fiber.Ctx) error {
	promos := h.promoService.GetPromos(c.Context())
	return presenters.SuccessResponse(c, promos, fiber.StatusOK, domain.MessageSuccessGetPromos)
}

func (h *promoHandler) ClaimPromo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ClaimPromoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimPromo, err)
	}

	res, err := h.promoService.ClaimPromo(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedClaimPromo, err)
		}
		if errors.Is(err, domain.ErrPromoAlreadyClaimed) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedClaimPromo, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimPromo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessClaimPromo)
}
