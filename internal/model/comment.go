package model

import "time"

// Comment is a user remark attached to a photo. UserID is the author and
// never changes after creation.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Photo Photo `json:"-" gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
	User  User  `json:"-" gorm:"foreignKey:UserID"`

	// Username is projected from the author on list queries.
	Username string `json:"username,omitempty" gorm:"->;-:migration"`
}
