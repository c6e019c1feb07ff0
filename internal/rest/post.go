package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/internal/rest/request"
	"github.com/likelion/vlog/internal/rest/response"
)

// PostHandler represent the httphandler for posts
type PostHandler struct {
	Service     domain.PostUsecase
	UserService domain.UserRepository
}

func NewPostHandler(svc domain.PostUsecase, userRepo domain.UserRepository) *PostHandler {
	return &PostHandler{
		Service:     svc,
		UserService: userRepo,
	}
}

// GetByID will get the post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	post, err := h.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Store will store the post by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	email, ok := callerEmail(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	owner, err := h.UserService.GetByEmail(ctx, email)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	post := req.ToDomain()
	post.User = owner

	if err := h.Service.Store(ctx, &post); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}
