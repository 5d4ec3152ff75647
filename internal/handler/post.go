package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/middleware"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/service"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PostHandler owns the post CRUD routes.
type PostHandler struct {
	Posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{Posts: posts}
}

// ---------- requests/responses ----------

type postReq struct {
	Title      string   `json:"title"`
	Desc       string   `json:"desc"`
	CoverImage string   `json:"coverImage"`
	Categories []string `json:"categories"`
}

type postResp struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Desc       string    `json:"desc"`
	CoverImage string    `json:"coverImage,omitempty"`
	Owner      uint      `json:"owner"`
	OwnerName  string    `json:"ownerName,omitempty"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toPostResp(p *models.Post) postResp {
	cats := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, c.Name)
	}
	return postResp{
		ID:         p.ID,
		Title:      p.Title,
		Desc:       p.Description,
		CoverImage: p.CoverImage,
		Owner:      p.OwnerID,
		OwnerName:  p.Owner.Username,
		Categories: cats,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (h *PostHandler) bindReq(c *gin.Context) (*postReq, *models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return nil, nil, false
	}

	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, apperr.Validation("user should provide title and description"))
		return nil, nil, false
	}
	return &req, user, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Fail(c, apperr.Validation("invalid post id"))
		return 0, false
	}
	return uint(id), true
}

// ---------- routes ----------

// Create handles POST /posts/create.
func (h *PostHandler) Create(c *gin.Context) {
	req, user, ok := h.bindReq(c)
	if !ok {
		return
	}

	post, err := h.Posts.Create(user.ID, service.PostInput{
		Title:       req.Title,
		Description: req.Desc,
		CoverImage:  req.CoverImage,
		Categories:  req.Categories,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusCreated, toPostResp(post), "Post created successfully")
}

// All handles GET /posts/all-posts.
func (h *PostHandler) All(c *gin.Context) {
	posts, err := h.Posts.All()
	if err != nil {
		util.Fail(c, err)
		return
	}

	resp := make([]postResp, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResp(&posts[i]))
	}
	util.Success(c, http.StatusOK, resp, "All posts fetched successfully")
}

// Single handles GET /posts/post/:id.
func (h *PostHandler) Single(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.Posts.Get(id)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusOK, toPostResp(post), "Post fetched successfully")
}

// Update handles PUT /posts/update/:id.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, user, ok := h.bindReq(c)
	if !ok {
		return
	}

	post, err := h.Posts.Update(id, user.ID, service.PostInput{
		Title:       req.Title,
		Description: req.Desc,
		CoverImage:  req.CoverImage,
		Categories:  req.Categories,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusOK, toPostResp(post), "Post updated successfully")
}

// Delete handles DELETE /posts/delete/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	if err := h.Posts.Delete(id, user.ID); err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusOK, gin.H{}, "Post deleted successfully")
}
