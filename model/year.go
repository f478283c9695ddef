package model

// Year is the root aggregate. Every dated planner entity hangs off exactly
// one year row and is removed together with it.
type Year struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	YearNumber int  `gorm:"uniqueIndex;not null" json:"year_number" binding:"required,gt=0"`

	Calendar     []CalendarEvent  `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	YearlyPlans  []YearlyPlan     `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Habits       []Habit          `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Gratitude    []GratitudeEntry `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Review       []ReviewEntry    `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Months       []Month          `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	MonthlyPlans []MonthlyPlan    `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Diary        []DiaryEntry     `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	TaskColours  []TaskColour     `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	TaskPopups   []TaskPopup      `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	BestInMonths []BestInMonth    `gorm:"constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (Year) TableName() string { return "years" }
