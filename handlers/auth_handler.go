package handlers

import (
	"gig-marketplace/config"
	"gig-marketplace/helper"
	"gig-marketplace/middleware"
	"gig-marketplace/models"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: &helper.HTTPHelper{}}
}

// setSessionCookie mirrors the token into an HttpOnly cookie; bearer
// clients can ignore it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(config.JWTExpiration.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.setSessionCookie(c, response.Token)
	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.setSessionCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Login success", response)
}

// Logout overwrites the session cookie with an expired value. The token
// itself stays valid until its expiry; there is no server-side
// revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Logged out", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetUserByID(currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", user)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.DeleteAccount(currentUserID(c), req.Password); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Account deleted", h.Helper.EmptyJsonMap())
}
