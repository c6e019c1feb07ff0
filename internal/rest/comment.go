package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/internal/metrics"
	"github.com/likelion/vlog/internal/rest/middleware"
	"github.com/likelion/vlog/internal/rest/request"
	"github.com/likelion/vlog/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// GetComments returns the post's comment tree, roots in insertion order
// with their replies nested under them.
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	comments, err := h.Service.GetComments(ctx, postID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentListFromDomain(comments))
}

// CreateComment stores a new comment, or a reply when parent_id is set.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	email, ok := callerEmail(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, postID, req.Content, req.ParentID, email)
	if err != nil {
		metrics.CommentOperationsTotal.WithLabelValues("create", "error").Inc()
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	metrics.CommentOperationsTotal.WithLabelValues("create", "success").Inc()
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(comment))
}

// UpdateComment edits the comment's content. Only the author may edit.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.CommentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	email, ok := callerEmail(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, postID, commentID, req.Content, email)
	if err != nil {
		metrics.CommentOperationsTotal.WithLabelValues("update", "error").Inc()
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	metrics.CommentOperationsTotal.WithLabelValues("update", "success").Inc()
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// DeleteComment removes the comment, replies included when it is a root.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	email, ok := callerEmail(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, postID, commentID, email); err != nil {
		metrics.CommentOperationsTotal.WithLabelValues("delete", "error").Inc()
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	metrics.CommentOperationsTotal.WithLabelValues("delete", "success").Inc()
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (int64, error) {
	idP, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	return int64(idP), nil
}

func callerEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(middleware.UserEmailKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return "", false
	}
	return email.(string), true
}

// getStatusCode maps the domain errors onto HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrReplyDepthExceeded),
		errors.Is(err, domain.ErrParentPostMismatch),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
