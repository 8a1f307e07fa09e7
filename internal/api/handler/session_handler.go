package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/api/middleware"
	"github.com/sietse/jobboard/internal/core/service"
)

type SessionHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

func NewSessionHandler(authService *service.AuthService, secureCookies bool) *SessionHandler {
	return &SessionHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// CreateForm handles GET /login
func (h *SessionHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormDefinition{
		Action: "/login",
		Method: http.MethodPost,
		Fields: []dto.FormField{
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	})
}

// Store handles POST /login. On success the previous session, if any,
// is destroyed and a fresh identifier issued.
func (h *SessionHandler) Store(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	currentToken := middleware.SessionToken(c)

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, currentToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token, service.SessionLifetimeHours*3600)

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Destroy handles DELETE /logout
func (h *SessionHandler) Destroy(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookies, true)
}
