package model

// Favorite is the user↔photo many-to-many join. Composite primary key, no
// payload; duplicate inserts are absorbed with ON CONFLICT DO NOTHING.
type Favorite struct {
	UserID  uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PhotoID uint `json:"photo_id" gorm:"primaryKey;autoIncrement:false"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Photo Photo `json:"-" gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}
