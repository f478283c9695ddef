package model

// Dates travel as plain YYYY-MM-DD strings; the ISO form keeps lexicographic
// and chronological order identical, so no column-level date type is needed.
// The "month" binding rule is registered by the HTTP layer against
// IsMonthName.

// CalendarEvent is a dated note on the year calendar grid.
type CalendarEvent struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	YearID uint   `gorm:"index;not null" json:"year_id"`
	Date   string `gorm:"not null" json:"date" binding:"required,datetime=2006-01-02"`
	Event  string `gorm:"not null" json:"event" binding:"required"`
}

func (CalendarEvent) TableName() string { return "calendar" }

// YearlyPlan is a checklist item for the whole year.
type YearlyPlan struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	YearID    uint   `gorm:"index;not null" json:"year_id"`
	Task      string `gorm:"not null" json:"task" binding:"required"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (YearlyPlan) TableName() string { return "yearly_plans" }

// Habit is one cell of the weekly habit grid: a task on a given weekday of
// the week starting at WeekStarting.
type Habit struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	YearID       uint   `gorm:"index;not null" json:"year_id"`
	WeekStarting string `gorm:"index;not null" json:"week_starting" binding:"required,datetime=2006-01-02"`
	DayOfWeek    string `gorm:"not null" json:"day_of_week" binding:"required"`
	Task         string `gorm:"not null" json:"task" binding:"required"`
	Completed    bool   `gorm:"default:false" json:"completed"`
}

func (Habit) TableName() string { return "habit_tracker" }

// GratitudeEntry is a dated gratitude diary line.
type GratitudeEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	YearID    uint   `gorm:"index;not null" json:"year_id"`
	EntryDate string `gorm:"not null" json:"entry_date" binding:"required,datetime=2006-01-02"`
	Content   string `gorm:"not null" json:"content" binding:"required"`
}

func (GratitudeEntry) TableName() string { return "gratitude_diary" }

// ReviewEntry is a year-review question with the user's answer.
type ReviewEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	YearID   uint   `gorm:"index;not null" json:"year_id"`
	Question string `gorm:"not null" json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

func (ReviewEntry) TableName() string { return "review" }

// Month holds the per-month presentation assets for one year.
type Month struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	YearID        uint   `gorm:"index;not null" json:"year_id"`
	MonthName     string `gorm:"not null" json:"month_name" binding:"required,month"`
	IconPath      string `json:"icon_path"`
	Banner        string `json:"banner"`
	ReadingLink   string `json:"reading_link"`
	MonthIconPath string `json:"month_icon_path"`
}

func (Month) TableName() string { return "months" }

// MonthlyPlan is a checklist item scoped to a single month.
type MonthlyPlan struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	YearID    uint   `gorm:"index;not null" json:"year_id"`
	Month     string `gorm:"not null" json:"month" binding:"required,month"`
	Task      string `gorm:"not null" json:"task" binding:"required"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (MonthlyPlan) TableName() string { return "monthly_plans" }

// DiaryEntry is a dated task line inside a month's diary page.
type DiaryEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	YearID    uint   `gorm:"index;not null" json:"year_id"`
	Month     string `gorm:"not null" json:"month" binding:"required,month"`
	Date      string `gorm:"not null" json:"date" binding:"required,datetime=2006-01-02"`
	Task      string `gorm:"not null" json:"task" binding:"required"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (DiaryEntry) TableName() string { return "monthly_diary" }

// TaskColour marks a diary date with a colour code.
type TaskColour struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	YearID     uint   `gorm:"index;not null" json:"year_id"`
	Month      string `gorm:"not null" json:"month" binding:"required,month"`
	Date       string `gorm:"not null" json:"date" binding:"required,datetime=2006-01-02"`
	ColourCode string `gorm:"not null" json:"colour_code" binding:"required"`
}

func (TaskColour) TableName() string { return "task_colours" }

// TaskPopup attaches a popup message to a diary date.
type TaskPopup struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	YearID       uint   `gorm:"index;not null" json:"year_id"`
	Month        string `gorm:"not null" json:"month" binding:"required,month"`
	Date         string `gorm:"not null" json:"date" binding:"required,datetime=2006-01-02"`
	PopupMessage string `gorm:"not null" json:"popup_message" binding:"required"`
}

func (TaskPopup) TableName() string { return "task_popups" }

// BestInMonth is the highlight picture picked for a month.
type BestInMonth struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	YearID    uint   `gorm:"index;not null" json:"year_id"`
	Month     string `gorm:"not null" json:"month" binding:"required,month"`
	ImagePath string `gorm:"not null" json:"image_path" binding:"required"`
}

func (BestInMonth) TableName() string { return "best_in_months" }

// SetYear pins a row under its parent year. Handlers call it with the path
// value so a year_id smuggled in the body never wins.
func (e *CalendarEvent) SetYear(id uint)  { e.YearID = id }
func (e *YearlyPlan) SetYear(id uint)     { e.YearID = id }
func (e *Habit) SetYear(id uint)          { e.YearID = id }
func (e *GratitudeEntry) SetYear(id uint) { e.YearID = id }
func (e *ReviewEntry) SetYear(id uint)    { e.YearID = id }
func (e *Month) SetYear(id uint)          { e.YearID = id }
func (e *MonthlyPlan) SetYear(id uint)    { e.YearID = id }
func (e *DiaryEntry) SetYear(id uint)     { e.YearID = id }
func (e *TaskColour) SetYear(id uint)     { e.YearID = id }
func (e *TaskPopup) SetYear(id uint)      { e.YearID = id }
func (e *BestInMonth) SetYear(id uint)    { e.YearID = id }
