package handlers

import (
	"gig-marketplace/models"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the id the auth middleware stored; zero when the
// request is anonymous.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// currentActor loads a fresh snapshot of the authenticated user so that
// bans and role changes take effect immediately, not at token expiry.
func currentActor(c *gin.Context, authService services.AuthService) (services.Actor, error) {
	id := currentUserID(c)
	if id == 0 {
		return services.Actor{}, models.ErrUnauthenticated
	}
	user, err := authService.GetUserByID(id)
	if err != nil {
		return services.Actor{}, models.ErrUnauthenticated
	}
	return services.Actor{ID: user.ID, Role: user.Role, Banned: user.IsBanned}, nil
}
