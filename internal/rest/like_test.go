package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"board-backend/domain"
	"board-backend/domain/mocks"
	"board-backend/internal/rest"
	"board-backend/internal/rest/middleware"
)

func setupLikeRouter(svc domain.LikeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := rest.NewLikeHandler(svc)
	r.GET("/comments/:id/likes", handler.Count)

	authorized := r.Group("", middleware.GatewayIdentity())
	authorized.POST("/comments/:id/like", handler.Toggle)
	authorized.GET("/comments/:id/like", handler.Liked)
	return r
}

func TestToggleHandler(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	svc.On("Toggle", mock.Anything, int64(42), int64(7)).
		Return(domain.LikeResult{Liked: true, Count: 5}, nil)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/comments/42/like", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res domain.LikeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Liked)
	assert.Equal(t, int64(5), res.Count)
	svc.AssertExpectations(t)
}

func TestToggleHandlerMissingIdentity(t *testing.T) {
	svc := new(mocks.LikeUsecase)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/comments/42/like", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleHandlerBadIdentityHeader(t *testing.T) {
	svc := new(mocks.LikeUsecase)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/comments/42/like", nil)
	req.Header.Set(middleware.HeaderUserID, "not-a-number")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleHandlerCommentNotFound(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	svc.On("Toggle", mock.Anything, int64(42), int64(7)).
		Return(domain.LikeResult{}, domain.ErrNotFound)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/comments/42/like", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleHandlerInternalError(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	svc.On("Toggle", mock.Anything, int64(42), int64(7)).
		Return(domain.LikeResult{}, errors.New("db connection lost"))

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/comments/42/like", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// 计数是公开接口, 不需要身份头
func TestCountHandler(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	svc.On("GetLikeCount", mock.Anything, int64(42)).Return(int64(12), nil)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/comments/42/likes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body["count"])
}

func TestCountHandlerInvalidID(t *testing.T) {
	svc := new(mocks.LikeUsecase)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/comments/abc/likes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "GetLikeCount", mock.Anything, mock.Anything)
}

func TestLikedHandler(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	svc.On("IsLikedBy", mock.Anything, int64(42), int64(7)).Return(true, nil)

	r := setupLikeRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/comments/42/like", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["liked"])
}
