package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportshub-backend/internal/domains/user"
	"sportshub-backend/internal/shared/middleware"
	"sportshub-backend/internal/shared/response"
	"sportshub-backend/pkg/jwt"
	"sportshub-backend/pkg/logger"
)

// UserHandler translates HTTP to the user service. Stateless, holds
// only dependencies.
type UserHandler struct {
	service      user.Service
	jwtManager   *jwt.Manager
	secureCookie bool
}

// NewUserHandler wires the service and the cookie settings. secureCookie
// should be true in production so the session cookie is HTTPS-only.
func NewUserHandler(service user.Service, jwtManager *jwt.Manager, secureCookie bool) *UserHandler {
	return &UserHandler{
		service:      service,
		jwtManager:   jwtManager,
		secureCookie: secureCookie,
	}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	userDTO, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, userDTO)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	userDTO, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, userDTO)
}

// Logout handles POST /auth/logout. Clearing the cookie is the whole
// session teardown, tokens are not tracked server side.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	userDTO, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userDTO)
}

// ========================================
// HELPERS
// ========================================

// setSessionCookie writes the JWT into an HTTP-only cookie. SameSite Lax
// keeps the cookie on top-level navigations while blocking cross-site
// POSTs.
func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookieName,
		token,
		int(h.jwtManager.Expiry().Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)
}

func (h *UserHandler) bindAndValidate(c *gin.Context, req interface {
	Validate() error
}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return false
	}
	return true
}

// handleError maps domain errors to HTTP status codes. Conflicts come
// back as 400 so the client treats them like any other invalid input.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	// 400 Bad Request - conflicts included
	case errors.Is(err, user.ErrUsernameAlreadyExists),
		errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, user.ErrInvalidRole):
		response.BadRequest(c, err.Error())

	// 401 Unauthorized
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrUnauthorized):
		response.Unauthorized(c, err.Error())

	// 403 Forbidden
	case errors.Is(err, user.ErrForbidden):
		response.Forbidden(c, err.Error())

	// 404 Not Found
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err.Error())

	// 500 Internal Server Error
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, err.Error())
	}
}
