package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/api/middleware"
	"github.com/sietse/jobboard/internal/core/service"
)

// logoExtensions maps accepted logo MIME types to the stored file
// extension. Detection is by content, not by the client's filename.
var logoExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type RegistrationHandler struct {
	accountService *service.AccountService
	authService    *service.AuthService
	secureCookies  bool
}

func NewRegistrationHandler(
	accountService *service.AccountService,
	authService *service.AuthService,
	secureCookies bool,
) *RegistrationHandler {
	return &RegistrationHandler{
		accountService: accountService,
		authService:    authService,
		secureCookies:  secureCookies,
	}
}

// CreateForm handles GET /register
func (h *RegistrationHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormDefinition{
		Action: "/register",
		Method: http.MethodPost,
		Fields: []dto.FormField{
			{Name: "name", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true, Max: service.MaxEmailLength},
			{Name: "password", Type: "password", Required: true, Min: service.MinPasswordLength},
			{Name: "password_confirmation", Type: "password", Required: true},
			{Name: "employer", Type: "text", Required: true},
			{Name: "logo", Type: "file", Required: true, Accept: []string{"png", "jpg", "jpeg", "webp"}},
		},
	})
}

// Store handles POST /register (multipart). Creates user, employer
// and logo as one logical transaction and logs the new user in.
func (h *RegistrationHandler) Store(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if req.Password != req.PasswordConfirmation {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  "Unprocessable Entity",
			Code:   http.StatusUnprocessableEntity,
			Fields: map[string]string{"password": "The password confirmation does not match."},
		})
		return
	}

	logo, ext, fieldErr := h.readLogo(c)
	if fieldErr != "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  "Unprocessable Entity",
			Code:   http.StatusUnprocessableEntity,
			Fields: map[string]string{"logo": fieldErr},
		})
		return
	}

	user, _, err := h.accountService.Register(c.Request.Context(), service.Registration{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		EmployerName: req.Employer,
		Logo:         logo,
		LogoExt:      ext,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_, token, err := h.authService.StartSession(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, service.SessionLifetimeHours*3600, "/", "", h.secureCookies, true)

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// readLogo pulls the logo upload out of the form and sniffs its
// content type against the allow list. Returns a reader over the full
// file, the extension to store it under, and a field error message.
func (h *RegistrationHandler) readLogo(c *gin.Context) (io.Reader, string, string) {
	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		return nil, "", "The logo field is required."
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "The logo could not be read."
	}
	if len(data) == 0 {
		return nil, "", "The logo field is required."
	}

	mime := mimetype.Detect(data)
	ext, ok := logoExtensions[mime.String()]
	if !ok {
		return nil, "", "The logo must be a png, jpg, jpeg or webp image."
	}

	return bytes.NewReader(data), ext, ""
}
