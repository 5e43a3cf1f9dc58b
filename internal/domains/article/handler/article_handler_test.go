package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articleRepo "sportshub-backend/internal/domains/article/repository"
	articleService "sportshub-backend/internal/domains/article/service"
	"sportshub-backend/internal/domains/user"
	userHandler "sportshub-backend/internal/domains/user/handler"
	userRepo "sportshub-backend/internal/domains/user/repository"
	userService "sportshub-backend/internal/domains/user/service"
	"sportshub-backend/internal/shared/middleware"
	"sportshub-backend/pkg/jwt"
)

// newTestRouter assembles the API on memory stores, mirroring the real
// route table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := userRepo.NewMemoryRepository()
	articles := articleRepo.NewMemoryRepository(users)
	jwtManager := jwt.NewManager("test-secret", time.Hour)

	uh := userHandler.NewUserHandler(userService.NewUserService(users, jwtManager), jwtManager, false)
	ah := NewArticleHandler(articleService.NewArticleService(articles))

	router := gin.New()
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", uh.Register)
	auth.POST("/login", uh.Login)
	auth.POST("/logout", uh.Logout)
	auth.GET("/me", middleware.AuthMiddleware(jwtManager), uh.Me)

	arts := api.Group("/articles")
	arts.GET("", ah.List)
	arts.GET("/search", ah.Search)

	authorOnly := arts.Group("")
	authorOnly.Use(
		middleware.AuthMiddleware(jwtManager),
		middleware.RequireRole(string(user.RoleAuthor), string(user.RoleAdmin)),
	)
	authorOnly.GET("/my", ah.ListMine)
	authorOnly.POST("", ah.Create)
	authorOnly.PATCH("/:id", ah.Update)
	authorOnly.DELETE("/:id", ah.Delete)

	arts.GET("/:id", ah.Get)

	return router
}

func doJSON(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func register(t *testing.T, router *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestRegisterSetsCookieAndRole(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "AUTHOR", body["role"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestRegisterConflictIs400(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body, "message")
}

func TestLoginAndMe(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = doJSON(router, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "alice", body["username"])
}

func TestMeWithoutCookie(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestArticleLifecycle(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "alice")

	// Create a draft.
	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title":    "Canadiens Win Big Game!",
		"excerpt":  "A thrilling overtime win",
		"content":  "Full story here",
		"category": "NHL",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeBody[map[string]any](t, w)
	assert.Equal(t, "canadiens-win-big-game", created["slug"])
	assert.Equal(t, false, created["published"])
	id := created["id"].(string)

	// Draft is invisible publicly.
	w = doJSON(router, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]map[string]any](t, w))

	// But listed under /articles/my.
	w = doJSON(router, http.MethodGet, "/api/articles/my", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decodeBody[[]map[string]any](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, false, mine[0]["published"])

	// Publish it.
	w = doJSON(router, http.MethodPatch, "/api/articles/"+id, gin.H{
		"published": true,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Now the public feed and search see it.
	w = doJSON(router, http.MethodGet, "/api/articles", nil)
	feed := decodeBody[[]map[string]any](t, w)
	require.Len(t, feed, 1)
	assert.Equal(t, "Canadiens Win Big Game!", feed[0]["title"])

	w = doJSON(router, http.MethodGet, "/api/articles/search?q=canadiens", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, w), 1)

	// Reading bumps the view counter.
	w = doJSON(router, http.MethodGet, "/api/articles/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody[map[string]any](t, w)
	assert.Equal(t, float64(1), detail["views"])
	author := detail["author"].(map[string]any)
	assert.Equal(t, "alice", author["username"])
}

func TestCreateRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title":    "Nope",
		"excerpt":  "e",
		"content":  "c",
		"category": "NHL",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateValidation(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title": "Missing everything else",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body, "errors")
}

func TestUpdateByNonOwnerIs403(t *testing.T) {
	router := newTestRouter(t)
	alice := register(t, router, "alice")
	bob := register(t, router, "bob")

	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title":    "Alice Story",
		"excerpt":  "e",
		"content":  "c",
		"category": "NHL",
	}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody[map[string]any](t, w)["id"].(string)

	w = doJSON(router, http.MethodPatch, "/api/articles/"+id, gin.H{
		"title": "Bob Was Here",
	}, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/articles/"+id, nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteByOwner(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title":    "Short Lived",
		"excerpt":  "e",
		"content":  "c",
		"category": "NHL",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody[map[string]any](t, w)["id"].(string)

	w = doJSON(router, http.MethodDelete, "/api/articles/"+id, nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/articles/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/articles/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, fmt.Sprintf("/api/articles/%s", "00000000-0000-0000-0000-000000000001"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchShortQuery(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "alice")

	w := doJSON(router, http.MethodPost, "/api/articles", gin.H{
		"title":     "A Big Win",
		"excerpt":   "e",
		"content":   "c",
		"category":  "NHL",
		"published": true,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	// Queries under two characters never reach the stores.
	for _, q := range []string{"", "a"} {
		w = doJSON(router, http.MethodGet, "/api/articles/search?q="+q, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody[[]map[string]any](t, w), "query %q must return an empty list", q)
	}

	// Two characters is enough to match.
	w = doJSON(router, http.MethodGet, "/api/articles/search?q=wi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, w), 1)
}
