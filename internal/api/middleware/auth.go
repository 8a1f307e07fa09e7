package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/service"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "jobboard_session"

	AuthHeaderKey     = "Authorization"
	UserContextKey    = "auth_user"
	SessionContextKey = "auth_session"
)

// SessionToken extracts the session token from the cookie or, for
// API clients, from a Bearer authorization header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader(AuthHeaderKey)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthMiddleware requires a valid session and stores the resolved
// user and session in the request context.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Authentication required",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		user, session, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or expired session",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Set(SessionContextKey, session)

		c.Next()
	}
}

// GuestMiddleware blocks authenticated users from guest-only routes
// (login and registration).
func GuestMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token != "" {
			if _, _, err := authService.Authenticate(c.Request.Context(), token); err == nil {
				c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error:   "Forbidden",
					Message: "Already authenticated",
					Code:    http.StatusForbidden,
				})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	return user, ok
}

// CurrentSession retrieves the authenticated session from context
func CurrentSession(c *gin.Context) (*domain.Session, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, false
	}

	session, ok := value.(*domain.Session)
	return session, ok
}
