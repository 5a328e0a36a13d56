package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"board-backend/domain"
	"board-backend/internal/rest/request"
	"board-backend/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	req.UserID = userID

	// Get post ID from URL parameter
	postID, ok := paramID(c)
	if !ok {
		return
	}
	req.PostID = postID

	comment := req.ToDomain()

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": response.NewCommentFromDomain(&comment)})
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := paramID(c)
	if !ok {
		return
	}
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, commentID, userID); err != nil {
		if err == domain.ErrForbidden {
			c.JSON(http.StatusForbidden, ResponseError{Message: "You do not have permission to delete this comment"})
			return
		}
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *commentHandler) FetchCommentsByPost(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	postID, ok := paramID(c)
	if !ok {
		return
	}

	cursor := c.Query("cursor")

	ctx := c.Request.Context()
	comments, nextCursor, err := h.Service.FetchByPost(ctx, postID, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, response.NewCommentFromDomain(comment))
	}

	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
