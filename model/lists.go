package model

// Goal is a standalone goal with a completion flag, not tied to any year.
type Goal struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title" binding:"required"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (Goal) TableName() string { return "goals" }

// Course tracks a course the user is taking.
type Course struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title" binding:"required"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (Course) TableName() string { return "courses" }

// WishlistItem is a wishlist entry with an optional picture.
type WishlistItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title" binding:"required"`
	ImagePath string `json:"image_path"`
}

func (WishlistItem) TableName() string { return "wishlist" }
