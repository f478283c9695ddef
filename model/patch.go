package model

// Patch types carry the updatable fields of each entity as pointers: nil
// means "leave unchanged". Changes returns the column updates for the set
// fields, keyed by column name, ready for a partial UPDATE.
//
// The binding tags use omitnil, not omitempty: a field that is present but
// blank must fail validation, and omitempty would wave it through once the
// pointer is dereferenced.

type YearPatch struct {
	YearNumber *int `json:"year_number" binding:"required,gt=0"`
}

type CalendarEventPatch struct {
	Date  *string `json:"date" binding:"omitnil,datetime=2006-01-02"`
	Event *string `json:"event" binding:"omitnil,min=1"`
}

func (p CalendarEventPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.Event != nil {
		m["event"] = *p.Event
	}
	return m
}

type YearlyPlanPatch struct {
	Task      *string `json:"task" binding:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

func (p YearlyPlanPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Task != nil {
		m["task"] = *p.Task
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type HabitPatch struct {
	WeekStarting *string `json:"week_starting" binding:"omitnil,datetime=2006-01-02"`
	DayOfWeek    *string `json:"day_of_week" binding:"omitnil,min=1"`
	Task         *string `json:"task" binding:"omitnil,min=1"`
	Completed    *bool   `json:"completed"`
}

func (p HabitPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.WeekStarting != nil {
		m["week_starting"] = *p.WeekStarting
	}
	if p.DayOfWeek != nil {
		m["day_of_week"] = *p.DayOfWeek
	}
	if p.Task != nil {
		m["task"] = *p.Task
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type GratitudeEntryPatch struct {
	EntryDate *string `json:"entry_date" binding:"omitnil,datetime=2006-01-02"`
	Content   *string `json:"content" binding:"omitnil,min=1"`
}

func (p GratitudeEntryPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.EntryDate != nil {
		m["entry_date"] = *p.EntryDate
	}
	if p.Content != nil {
		m["content"] = *p.Content
	}
	return m
}

type ReviewEntryPatch struct {
	Question *string `json:"question" binding:"omitnil,min=1"`
	Answer   *string `json:"answer"`
}

func (p ReviewEntryPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Question != nil {
		m["question"] = *p.Question
	}
	if p.Answer != nil {
		m["answer"] = *p.Answer
	}
	return m
}

type MonthPatch struct {
	MonthName     *string `json:"month_name" binding:"omitnil,month"`
	IconPath      *string `json:"icon_path"`
	Banner        *string `json:"banner"`
	ReadingLink   *string `json:"reading_link"`
	MonthIconPath *string `json:"month_icon_path"`
}

func (p MonthPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.MonthName != nil {
		m["month_name"] = *p.MonthName
	}
	if p.IconPath != nil {
		m["icon_path"] = *p.IconPath
	}
	if p.Banner != nil {
		m["banner"] = *p.Banner
	}
	if p.ReadingLink != nil {
		m["reading_link"] = *p.ReadingLink
	}
	if p.MonthIconPath != nil {
		m["month_icon_path"] = *p.MonthIconPath
	}
	return m
}

type MonthlyPlanPatch struct {
	Month     *string `json:"month" binding:"omitnil,month"`
	Task      *string `json:"task" binding:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

func (p MonthlyPlanPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Month != nil {
		m["month"] = *p.Month
	}
	if p.Task != nil {
		m["task"] = *p.Task
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type DiaryEntryPatch struct {
	Month     *string `json:"month" binding:"omitnil,month"`
	Date      *string `json:"date" binding:"omitnil,datetime=2006-01-02"`
	Task      *string `json:"task" binding:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

func (p DiaryEntryPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Month != nil {
		m["month"] = *p.Month
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.Task != nil {
		m["task"] = *p.Task
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type TaskColourPatch struct {
	Month      *string `json:"month" binding:"omitnil,month"`
	Date       *string `json:"date" binding:"omitnil,datetime=2006-01-02"`
	ColourCode *string `json:"colour_code" binding:"omitnil,min=1"`
}

func (p TaskColourPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Month != nil {
		m["month"] = *p.Month
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.ColourCode != nil {
		m["colour_code"] = *p.ColourCode
	}
	return m
}

type TaskPopupPatch struct {
	Month        *string `json:"month" binding:"omitnil,month"`
	Date         *string `json:"date" binding:"omitnil,datetime=2006-01-02"`
	PopupMessage *string `json:"popup_message" binding:"omitnil,min=1"`
}

func (p TaskPopupPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Month != nil {
		m["month"] = *p.Month
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.PopupMessage != nil {
		m["popup_message"] = *p.PopupMessage
	}
	return m
}

type BestInMonthPatch struct {
	Month     *string `json:"month" binding:"omitnil,month"`
	ImagePath *string `json:"image_path" binding:"omitnil,min=1"`
}

func (p BestInMonthPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Month != nil {
		m["month"] = *p.Month
	}
	if p.ImagePath != nil {
		m["image_path"] = *p.ImagePath
	}
	return m
}

type GoalPatch struct {
	Title     *string `json:"title" binding:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

func (p GoalPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type CoursePatch struct {
	Title     *string `json:"title" binding:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

func (p CoursePatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}

type WishlistItemPatch struct {
	Title     *string `json:"title" binding:"omitnil,min=1"`
	ImagePath *string `json:"image_path"`
}

func (p WishlistItemPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.ImagePath != nil {
		m["image_path"] = *p.ImagePath
	}
	return m
}

// ReadingPatch updates scalar fields; a non-nil Authors replaces the whole
// association set (empty slice detaches every author).
type ReadingPatch struct {
	Title      *string   `json:"title" binding:"omitnil,min=1"`
	Language   *string   `json:"language"`
	Status     *string   `json:"status"`
	Link       *string   `json:"link"`
	Series     *string   `json:"series"`
	BannerPath *string   `json:"banner_path"`
	IconPath   *string   `json:"icon_path"`
	CoverPath  *string   `json:"cover_path"`
	Authors    *[]string `json:"authors" binding:"omitnil,dive,required"`
}

func (p ReadingPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Language != nil {
		m["language"] = *p.Language
	}
	if p.Status != nil {
		m["status"] = *p.Status
	}
	if p.Link != nil {
		m["link"] = *p.Link
	}
	if p.Series != nil {
		m["series"] = *p.Series
	}
	if p.BannerPath != nil {
		m["banner_path"] = *p.BannerPath
	}
	if p.IconPath != nil {
		m["icon_path"] = *p.IconPath
	}
	if p.CoverPath != nil {
		m["cover_path"] = *p.CoverPath
	}
	return m
}

type WorkPatch struct {
	WorkName *string `json:"work_name" binding:"omitnil,min=1"`
}

func (p WorkPatch) Changes() map[string]any {
	m := map[string]any{}
	if p.WorkName != nil {
		m["work_name"] = *p.WorkName
	}
	return m
}

type WorkNotePatch struct {
	NoteText *string `json:"note_text" binding:"omitnil,min=1"`
}

func (p WorkNotePatch) Changes() map[string]any {
	m := map[string]any{}
	if p.NoteText != nil {
		m["note_text"] = *p.NoteText
	}
	return m
}
