package models

import "time"

// Category tags posts. Created on demand the first time a post
// references the name.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time
}
