package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"board-backend/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// LikeHandler represent the httphandler for comment likes
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle flips the caller's like state on a comment
func (h *LikeHandler) Toggle(c *gin.Context) {
	commentID, ok := paramID(c)
	if !ok {
		return
	}
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res, err := h.Service.Toggle(ctx, commentID, userID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Count returns the best-known like count of a comment
func (h *LikeHandler) Count(c *gin.Context) {
	commentID, ok := paramID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	count, err := h.Service.GetLikeCount(ctx, commentID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Liked reports whether the caller currently likes the comment
func (h *LikeHandler) Liked(c *gin.Context) {
	commentID, ok := paramID(c)
	if !ok {
		return
	}
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	liked, err := h.Service.IsLikedBy(ctx, commentID, userID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func paramID(c *gin.Context) (int64, bool) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return int64(idP), true
}

func contextUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return 0, false
	}
	return userID.(int64), true
}

func getStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
