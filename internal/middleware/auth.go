package middleware

import (
	"net/http"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "token"

// AuthMiddleware validates the session cookie and stores the caller's
// identity on the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				model.NewErrorResponse("User is not authenticated", ""))
			return
		}

		claims, err := util.ParseToken(tokenString, cfg.Auth.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				model.NewErrorResponse("Invalid or expired session", ""))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				model.NewErrorResponse("Invalid session identity", ""))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group on the caller's role. Applied uniformly
// so no handler carries its own role check.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		callerRole, _ := role.(string)
		for _, allowed := range roles {
			if callerRole == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			model.NewErrorResponse("Insufficient permissions", ""))
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
