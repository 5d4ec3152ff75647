package handler

import (
	"net/http"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/middleware"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/service"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler owns the session routes and token cookies.
type AuthHandler struct {
	Users *service.UserService
	JWT   config.JWTConfig
}

func NewAuthHandler(users *service.UserService, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{Users: users, JWT: jwtCfg}
}

// ---------- requests ----------

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type loginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

// ---------- cookies ----------

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair service.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("accessToken", pair.AccessToken,
		int(h.JWT.AccessTTL().Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", pair.RefreshToken,
		int(h.JWT.RefreshTTL().Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

// ---------- routes ----------

// Register handles POST /users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, apperr.Validation("All fields are required"))
		return
	}

	profile, err := h.Users.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusCreated, gin.H{"user": profile}, "User registered successfully")
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, apperr.Validation("username or email is required"))
		return
	}

	result, err := h.Users.Login(service.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}

	h.setTokenCookies(c, result.TokenPair)
	util.Success(c, http.StatusOK, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}, "User logged in successfully")
}

// Logout handles POST /users/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	if err := h.Users.Logout(user.ID); err != nil {
		util.Fail(c, err)
		return
	}

	h.clearTokenCookies(c)
	util.Success(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// RefreshToken handles POST /users/refresh-token. The token comes from
// the refreshToken cookie or, failing that, the request body.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var incoming string
	if cookie, err := c.Cookie("refreshToken"); err == nil {
		incoming = cookie
	}
	if incoming == "" {
		var req refreshReq
		// body is optional when the cookie is present
		_ = c.ShouldBindJSON(&req)
		incoming = req.RefreshToken
	}

	pair, err := h.Users.Refresh(incoming)
	if err != nil {
		util.Fail(c, err)
		return
	}

	h.setTokenCookies(c, *pair)
	util.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Access token refreshed")
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Fail(c, apperr.Auth("Unauthorized request"))
		return
	}

	profile, err := h.Users.Me(user.ID)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, http.StatusOK, gin.H{"user": profile}, "Current user fetched successfully")
}
