package models

import "time"

// User represents a registered author. The password hash and the
// currently valid refresh token never leave the server.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"` // stored lowercase
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	FullName     string `gorm:"size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Avatar       string `gorm:"size:255"`
	CoverImage   string `gorm:"size:255"`

	// RefreshToken holds the one refresh token currently accepted for
	// this user. Empty means no active session. Overwritten on every
	// login and refresh, cleared on logout.
	RefreshToken string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the public view of a user, safe to return to clients.
type Profile struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public strips credentials and the refresh token from a user record.
func (u *User) Public() Profile {
	return Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
	}
}
