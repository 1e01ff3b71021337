package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/auth"
)

const claimsKey = "claims"

// TokenValidator is the part of auth.JWTService the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// JWTAuth requires a valid bearer token and stores its claims on the context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAnyRole lets the request through when the token carries one of roles.
func (m *AuthMiddleware) RequireAnyRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.NewForbiddenError(forbiddenMessage(roles)))
	}
}

// ClaimsFrom returns the claims stored by JWTAuth.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

func forbiddenMessage(roles []models.Role) string {
	switch len(roles) {
	case 1:
		return "Only a logged-in " + string(roles[0]) + " can do this"
	default:
		return "Only a logged-in admin or teacher can do this"
	}
}
