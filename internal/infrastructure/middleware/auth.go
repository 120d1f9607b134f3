package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	"github.com/dikdasmen/spmb-backend/pkg/jwt"
	"github.com/dikdasmen/spmb-backend/pkg/response"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// ContextPrincipal is the context key for the resolved principal
	ContextPrincipal = "principal"
)

// AuthMiddleware validates the bearer token and resolves the caller's
// principal. The token carries role and tenant anchors, but the user row is
// re-read on every request: is_active and the role/anchor pairing are checked
// against the database, not against the token.
func AuthMiddleware(jwtManager *jwt.JWTManager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("Token validation failed")
			if err == jwt.ErrExpiredToken {
				response.Unauthorized(c, "token has expired")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid token subject")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Unauthorized(c, "account no longer exists")
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Unauthorized(c, "account is inactive")
			c.Abort()
			return
		}

		principal, err := access.FromUser(user)
		if err != nil {
			log.Warn().Str("user_id", user.ID.String()).Str("role", string(user.Role)).
				Msg("account fails role/anchor validation")
			response.Forbidden(c, "account is misconfigured")
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// GetPrincipal retrieves the resolved principal from context
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}
