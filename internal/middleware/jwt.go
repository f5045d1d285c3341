package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orgnest/backend/internal/auth"
	"github.com/orgnest/backend/pkg/response"
)

const (
	// ContextUserID is the key for the authenticated user ID in gin context.
	ContextUserID = "user_id"
	// ContextPrincipal is the key for the full decoded principal.
	ContextPrincipal = "principal"
)

// JWT guards protected endpoints: it verifies the bearer credential and
// attaches the Principal, or rejects with 401 before business logic runs.
// Header-shape failures use one generic message; expired and invalid tokens
// get distinct wording.
func JWT(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authentication failed")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "Authentication failed")
			c.Abort()
			return
		}
		principal, err := jwtService.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Unauthorized(c, "Token expired, please log in again")
			} else {
				response.Unauthorized(c, "Not authorized, token invalid")
			}
			c.Abort()
			return
		}
		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}
