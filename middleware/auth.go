package middleware

import (
	"strings"

	"gig-marketplace/config"
	"gig-marketplace/helper"
	"gig-marketplace/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

// SessionCookie is the cookie the auth handlers set on login/register.
const SessionCookie = "jwt"

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// extractToken accepts the bearer header or the session cookie; both
// resolve through the same parse path.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func resolveClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// AuthMiddleware requires a valid session token. Missing, malformed, and
// expired tokens all get the same generic response.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthenticated.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := resolveClaims(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthenticated.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// OptionalAuth resolves a session when present but lets anonymous
// requests through; public search uses it so owners can see their own
// inactive listings.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := resolveClaims(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, models.ErrUnauthenticated.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		role := userRole.(models.UserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, models.ErrForbidden.Error(), HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
