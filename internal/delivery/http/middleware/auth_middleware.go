package middleware

import (
	"net/http"
	"strings"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session token and loads the caller into
// the request context. The role always comes from the database, not the
// token claim, so a role change takes effect on the next request.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), string(user.Role))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// RequireRole gates a route group to one role. It runs after
// AuthMiddleware, which already resolved the caller from the database.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != string(role) {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
