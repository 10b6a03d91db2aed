package handlers

import (
	"foodie-journal/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the informational screens (FAQ, privacy policy, terms,
// about). Content ships with the build, same as the catalog.
type (
	PageHandler interface {
		FAQ(c *fiber.Ctx) error
		PrivacyPolicy(c *fiber.Ctx) error
		TermsAndConditions(c *fiber.Ctx) error
		About(c *fiber.Ctx) error
	}

	pageHandler struct{}
)

type pageContent struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

func NewPageHandler() PageHandler {
	return &pageHandler{}
}

func (h *pageHandler) FAQ(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, pageContent{
		Title: "Frequently Asked Questions",
		Sections: []string{
			"Do I need an account to browse dishes? No, the feed and dish details are open to everyone.",
			"Why do I need to log in to write a review? Reviews carry your display name, so a session is required.",
			"Are favorites saved forever? Favorites last for your current session only.",
			"How do I claim a promo? Open the Promos tab and tap Claim; you will be asked to log in first.",
		},
	}, fiber.StatusOK, "faq retrieved successfully")
}

func (h *pageHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, pageContent{
		Title: "Privacy Policy",
		Sections: []string{
			"We store only the profile details you provide: username, email, phone, and an optional photo.",
			"Reviews you submit are shown publicly with your username.",
			"We never sell or share your data with third parties.",
		},
	}, fiber.StatusOK, "privacy policy retrieved successfully")
}

func (h *pageHandler) TermsAndConditions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, pageContent{
		Title: "Terms and Conditions",
		Sections: []string{
			"Reviews must reflect your own experience and use respectful language.",
			"Promo claims are limited to one per account per promo.",
			"Accounts used for spam or abuse may be removed.",
		},
	}, fiber.StatusOK, "terms retrieved successfully")
}

func (h *pageHandler) About(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, pageContent{
		Title: "About Kuya Vince Carenderia",
		Sections: []string{
			"Kuya Vince Carenderia is a neighborhood eatery serving home-style Filipino food since 2015.",
			"The Foodie Journal app lets you browse the menu, keep favorites, and share reviews.",
		},
	}, fiber.StatusOK, "about retrieved successfully")
}
