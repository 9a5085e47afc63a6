package handlers

import (
	"io"
	"strconv"

	"gig-marketplace/helper"
	"gig-marketplace/models"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UserHandler struct {
	authService   services.AuthService
	sellerService services.SellerService
	imageStore    services.ImageStore
	Helper        *helper.HTTPHelper
}

func NewUserHandler(authService services.AuthService, sellerService services.SellerService, imageStore services.ImageStore) *UserHandler {
	return &UserHandler{
		authService:   authService,
		sellerService: sellerService,
		imageStore:    imageStore,
		Helper:        &helper.HTTPHelper{},
	}
}

func (h *UserHandler) BecomeSeller(c *gin.Context) {
	var req models.BecomeSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	profile, err := h.sellerService.BecomeSeller(actor, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Seller profile created", profile)
}

func (h *UserHandler) GetSellerProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid seller id", h.Helper.EmptyJsonMap())
		return
	}

	profile, err := h.sellerService.GetProfile(uint(userID))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Seller profile loaded", profile)
}

func (h *UserHandler) UpdateSellerProfile(c *gin.Context) {
	var req models.UpdateSellerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	actor, err := currentActor(c, h.authService)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	profile, err := h.sellerService.UpdateProfile(actor, actor.ID, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Seller profile updated", profile)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "no image file uploaded", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		h.Helper.SendBadRequest(c, "file size too large, maximum 5MB allowed", h.Helper.EmptyJsonMap())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		h.Helper.SendBadRequest(c, "invalid file type, only images are allowed", h.Helper.EmptyJsonMap())
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	url, err := h.imageStore.Upload(data, contentType)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	if _, err := h.authService.SetProfileImage(currentUserID(c), url); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile image uploaded", gin.H{"image_url": url})
}
