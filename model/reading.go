package model

// Reading is a tracked book or article. Authors are shared across readings
// through the reading_authors join table; deleting either side only drops
// the association rows.
type Reading struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Title      string   `gorm:"not null" json:"title"`
	Language   string   `json:"language"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
	Series     string   `json:"series"`
	BannerPath string   `json:"banner_path"`
	IconPath   string   `json:"icon_path"`
	CoverPath  string   `json:"cover_path"`
	Authors    []Author `gorm:"many2many:reading_authors;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"authors"`
}

func (Reading) TableName() string { return "reading" }

// Author is matched by unique name and created on demand when a reading
// references a name that does not exist yet.
type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Author) TableName() string { return "authors" }

// ReadingInput is the wire shape for creating a reading: scalar fields plus
// plain author names, resolved server side.
type ReadingInput struct {
	Title      string   `json:"title" binding:"required"`
	Language   string   `json:"language"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
	Series     string   `json:"series"`
	BannerPath string   `json:"banner_path"`
	IconPath   string   `json:"icon_path"`
	CoverPath  string   `json:"cover_path"`
	Authors    []string `json:"authors" binding:"omitempty,dive,required"`
}
