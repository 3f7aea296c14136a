package model

import "time"

// Photo represents an uploaded image. URL points at the blob store location;
// UserID is the owner and never changes after upload.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	URL         string    `json:"url" gorm:"size:512;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	IsPublished bool      `json:"is_published" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`

	// Username is projected from the owning user on list/detail queries.
	Username string `json:"username,omitempty" gorm:"->;-:migration"`
}
