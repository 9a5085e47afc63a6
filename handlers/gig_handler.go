package handlers

import (
	"strconv"

	"gig-marketplace/helper"
	"gig-marketplace/models"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	gigService  services.GigService
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewGigHandler(gigService services.GigService, authService services.AuthService) *GigHandler {
	return &GigHandler{gigService: gigService, authService: authService, Helper: &helper.HTTPHelper{}}
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	var req models.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	gig, err := h.gigService.CreateGig(actor, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Gig created", gig)
}

func (h *GigHandler) GetGigs(c *gin.Context) {
	var params models.GigListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	gigs, total, err := h.gigService.ListGigs(params, currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	page, limit := services.NormalizePaging(params.Page, params.Limit)

	h.Helper.SendSuccess(c, "Gigs loaded", gin.H{
		"items":      gigs,
		"pagination": h.Helper.GeneratePaging(page, limit, len(gigs), total),
	})
}

func (h *GigHandler) GetGig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	gig, err := h.gigService.GetGig(id, currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gig loaded", gig)
}

func (h *GigHandler) UpdateGig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	gig, err := h.gigService.UpdateGig(actor, id, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gig updated", gig)
}

func (h *GigHandler) DeleteGig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	if err := h.gigService.DeleteGig(actor, id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gig deleted", h.Helper.EmptyJsonMap())
}

func (h *GigHandler) ToggleStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid gig id", h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	gig, err := h.gigService.ToggleStatus(actor, id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gig status updated", gig)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
