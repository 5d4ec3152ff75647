package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/middleware"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/service"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler stores user images on local disk and records their
// URLs on the user profile. Files are served back under /uploads.
type UploadHandler struct {
	Users *service.UserService
	Cfg   config.UploadConfig
}

func NewUploadHandler(users *service.UserService, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{Users: users, Cfg: cfg}
}

func (h *UploadHandler) maxBytes() int64 {
	mb := h.Cfg.MaxSizeMB
	if mb <= 0 {
		mb = 5
	}
	return int64(mb) << 20
}

// saveImage validates and writes one uploaded file, returning its
// public URL path.
func (h *UploadHandler) saveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > h.maxBytes() {
		return "", apperr.Validation(fmt.Sprintf("file exceeds %d MB limit", h.maxBytes()>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return "", apperr.Internal("")
	}
	defer f.Close()

	// sniff actual content, never trust the client's extension
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", apperr.Internal("")
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", apperr.Validation("only image uploads are allowed")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Internal("")
	}

	if err := os.MkdirAll(h.Cfg.Dir, 0o755); err != nil {
		return "", apperr.Internal("")
	}

	name := uuid.NewString() + mtype.Extension()
	dst, err := os.Create(filepath.Join(h.Cfg.Dir, name))
	if err != nil {
		return "", apperr.Internal("")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return "", apperr.Internal("")
	}

	return "/uploads/" + name, nil
}

func (h *UploadHandler) handle(c *gin.Context, field string,
	apply func(userID uint, url string) (*models.Profile, error)) {

	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	fh, err := c.FormFile(field)
	if err != nil {
		util.Fail(c, apperr.Validation(field+" file is required"))
		return
	}

	url, err := h.saveImage(fh)
	if err != nil {
		util.Fail(c, err)
		return
	}

	profile, err := apply(user.ID, url)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusOK, gin.H{"user": profile}, "Image uploaded successfully")
}

// Avatar handles POST /users/avatar.
func (h *UploadHandler) Avatar(c *gin.Context) {
	h.handle(c, "avatar", h.Users.SetAvatar)
}

// CoverImage handles POST /users/cover-image.
func (h *UploadHandler) CoverImage(c *gin.Context) {
	h.handle(c, "coverImage", h.Users.SetCoverImage)
}
