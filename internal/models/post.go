package models

import "time"

// Post is a blog entry. Titles are globally unique; mutation and
// deletion are restricted to the owner.
type Post struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;uniqueIndex;not null"`
	Description string `gorm:"type:text;not null"`
	CoverImage  string `gorm:"size:255"`

	OwnerID uint `gorm:"index;not null"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	Categories []Category `gorm:"many2many:post_categories"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
