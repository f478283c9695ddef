package model

import "time"

// Work is a workplace or project the user keeps running notes under.
type Work struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	WorkName string     `gorm:"not null" json:"work_name" binding:"required"`
	Notes    []WorkNote `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (Work) TableName() string { return "work" }

// WorkNote is one timestamped entry under a work item, listed newest first.
type WorkNote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkID    uint      `gorm:"index;not null" json:"work_id"`
	NoteText  string    `gorm:"not null" json:"note_text" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (WorkNote) TableName() string { return "work_notes" }
