package handlers

import (
	"gig-marketplace/helper"
	"gig-marketplace/models"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	authService   services.AuthService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService, authService services.AuthService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, authService: authService, Helper: &helper.HTTPHelper{}}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	review, err := h.reviewService.RecordReview(actor, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Review created", review)
}

// RecomputeGigRating rebuilds a gig's rating aggregate from its stored
// reviews; admin-only repair for a detected inconsistency.
func (h *ReviewHandler) RecomputeGigRating(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.reviewService.RecomputeGigRating(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gig rating recomputed", h.Helper.EmptyJsonMap())
}

func (h *ReviewHandler) GetGigReviews(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	reviews, err := h.reviewService.ListReviews(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Reviews loaded", reviews)
}
