package service

import (
	"errors"
	"strings"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService orchestrates registration, login, logout and refresh.
type UserService struct {
	DB         *gorm.DB
	Tokens     *util.TokenIssuer
	BcryptCost int
}

func NewUserService(db *gorm.DB, tokens *util.TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{DB: db, Tokens: tokens, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

type LoginInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair is one access/refresh issuance.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginResult carries the authenticated profile plus its token pair.
type LoginResult struct {
	User models.Profile
	TokenPair
}

// Register creates a user with a hashed password and returns the
// public profile.
func (s *UserService) Register(in RegisterInput) (*models.Profile, error) {
	if missing := util.RequireFields(map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"fullName": in.FullName,
		"password": in.Password,
	}); len(missing) > 0 {
		return nil, apperr.Validation("All fields are required", missing...)
	}
	if err := util.ValidateEmail(in.Email); err != nil {
		return nil, apperr.Validation("Invalid email address")
	}

	username := util.NormalizeUsername(in.Username)
	email := strings.TrimSpace(in.Email)

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, apperr.Internal("")
	}
	if count > 0 {
		return nil, apperr.Conflict("User with email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.BcryptCost)
	if err != nil {
		return nil, apperr.Internal("")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// concurrent registration can slip past the pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("User with email or username already exists")
		}
		return nil, apperr.Internal("Something went wrong while registering")
	}

	profile := user.Public()
	return &profile, nil
}

// Login checks credentials, issues a token pair and persists the
// refresh token on the user.
func (s *UserService) Login(in LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(in.Username) == "" && strings.TrimSpace(in.Email) == "" {
		return nil, apperr.Validation("username or email is required")
	}
	if in.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	var user models.User
	err := s.DB.
		Where("username = ? OR email = ?", util.NormalizeUsername(in.Username), strings.TrimSpace(in.Email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User does not exist")
		}
		return nil, apperr.Internal("")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Auth("Invalid user credentials")
	}

	pair, err := s.issueAndStorePair(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user.Public(), TokenPair: *pair}, nil
}

// Logout clears the stored refresh token. Idempotent.
func (s *UserService) Logout(userID uint) error {
	if err := s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("refresh_token", "").Error; err != nil {
		return apperr.Internal("")
	}
	return nil
}

// Refresh rotates a refresh token: the incoming token must verify and
// match the value currently stored on its user, otherwise it is
// treated as expired or reused.
func (s *UserService) Refresh(incoming string) (*TokenPair, error) {
	if incoming == "" {
		return nil, apperr.Auth("Unauthorized request")
	}

	claims, err := s.Tokens.VerifyRefreshToken(incoming)
	if err != nil {
		return nil, apperr.Auth("Invalid refresh token")
	}

	var user models.User
	if err := s.DB.First(&user, claims.UserID).Error; err != nil {
		return nil, apperr.Auth("Invalid refresh token")
	}

	if user.RefreshToken == "" || incoming != user.RefreshToken {
		return nil, apperr.Auth("Refresh token is expired or used")
	}

	return s.issueAndStorePair(&user)
}

// Me returns the public profile for an existing user.
func (s *UserService) Me(userID uint) (*models.Profile, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User does not exist")
		}
		return nil, apperr.Internal("")
	}
	profile := user.Public()
	return &profile, nil
}

// SetAvatar persists a new avatar URL and returns the updated profile.
func (s *UserService) SetAvatar(userID uint, url string) (*models.Profile, error) {
	return s.setImage(userID, "avatar", url)
}

// SetCoverImage persists a new cover image URL and returns the updated profile.
func (s *UserService) SetCoverImage(userID uint, url string) (*models.Profile, error) {
	return s.setImage(userID, "cover_image", url)
}

func (s *UserService) setImage(userID uint, column, url string) (*models.Profile, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User does not exist")
		}
		return nil, apperr.Internal("")
	}
	if err := s.DB.Model(&user).Update(column, url).Error; err != nil {
		return nil, apperr.Internal("")
	}
	profile := user.Public()
	return &profile, nil
}

func (s *UserService) issueAndStorePair(user *models.User) (*TokenPair, error) {
	access, err := s.Tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, apperr.Internal("Something went wrong while generating access and refresh tokens")
	}
	refresh, err := s.Tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, apperr.Internal("Something went wrong while generating access and refresh tokens")
	}

	if err := s.DB.Model(user).Update("refresh_token", refresh).Error; err != nil {
		return nil, apperr.Internal("Something went wrong while generating access and refresh tokens")
	}
	user.RefreshToken = refresh

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
