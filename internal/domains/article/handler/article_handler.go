package handler

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sportshub-backend/internal/domains/article"
	"sportshub-backend/internal/domains/user"
	"sportshub-backend/internal/shared/middleware"
	"sportshub-backend/internal/shared/response"
	"sportshub-backend/pkg/logger"
)

// ArticleHandler translates HTTP to the article service.
type ArticleHandler struct {
	service article.Service
}

// NewArticleHandler wires the service.
func NewArticleHandler(service article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// List handles GET /articles. Only published articles are visible here.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Search handles GET /articles/search?q=. Queries shorter than two
// characters return an empty list rather than hitting the stores.
func (h *ArticleHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if utf8.RuneCountInString(q) < 2 {
		c.JSON(http.StatusOK, []article.ArticleWithAuthor{})
		return
	}

	articles, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get handles GET /articles/:id. Each hit counts as a view.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ========================================
// AUTHOR ENDPOINTS
// ========================================

// ListMine handles GET /articles/my. Drafts included.
func (h *ArticleHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	articles, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	actor, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	var req article.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update handles PATCH /articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	actor, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req article.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	actor, ok := h.actorFromContext(c)
	if !ok {
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ========================================
// HELPERS
// ========================================

func (h *ArticleHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ArticleHandler) actorFromContext(c *gin.Context) (article.Actor, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return article.Actor{}, false
	}
	role, _ := middleware.RoleFromContext(c)
	return article.Actor{UserID: userID, Role: user.Role(role)}, true
}

// handleError maps domain errors to HTTP status codes. Slug conflicts
// come back as 400, consistent with the rest of the API.
func (h *ArticleHandler) handleError(c *gin.Context, err error) {
	switch {
	// 400 Bad Request
	case errors.Is(err, article.ErrSlugAlreadyExists),
		errors.Is(err, article.ErrInvalidCategory):
		response.BadRequest(c, err.Error())

	// 403 Forbidden
	case errors.Is(err, article.ErrNotOwner):
		response.Forbidden(c, err.Error())

	// 404 Not Found
	case errors.Is(err, article.ErrArticleNotFound):
		response.NotFound(c, err.Error())

	// 500 Internal Server Error
	default:
		logger.Error("article handler error", err)
		response.InternalServerError(c, err.Error())
	}
}
