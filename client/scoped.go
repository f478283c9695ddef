package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

// Year-scoped collections. Paths follow the server's table-named segments
// under /years/{year_id}.

func scopedPath(yearID uint, segment string) string {
	return fmt.Sprintf("/years/%d/%s", yearID, segment)
}

func scopedItemPath(yearID uint, segment string, id uint) string {
	return fmt.Sprintf("/years/%d/%s/%d", yearID, segment, id)
}

func (c *Client) ListCalendar(ctx context.Context, yearID uint) ([]model.CalendarEvent, error) {
	out, err := doList[model.CalendarEvent](ctx, c, scopedPath(yearID, "calendar"))
	if err != nil {
		return nil, fmt.Errorf("list calendar: %w", err)
	}
	return out, nil
}

func (c *Client) CreateCalendarEvent(ctx context.Context, yearID uint, ev model.CalendarEvent) (*model.CalendarEvent, error) {
	out, err := doCreate[model.CalendarEvent](ctx, c, scopedPath(yearID, "calendar"), ev)
	if err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateCalendarEvent(ctx context.Context, yearID, id uint, patch model.CalendarEventPatch) (*model.CalendarEvent, error) {
	out, err := doUpdate[model.CalendarEvent](ctx, c, scopedItemPath(yearID, "calendar", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update calendar event: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteCalendarEvent(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "calendar", id)); err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}

func (c *Client) ListYearlyPlans(ctx context.Context, yearID uint) ([]model.YearlyPlan, error) {
	out, err := doList[model.YearlyPlan](ctx, c, scopedPath(yearID, "yearly_plans"))
	if err != nil {
		return nil, fmt.Errorf("list yearly plans: %w", err)
	}
	return out, nil
}

func (c *Client) CreateYearlyPlan(ctx context.Context, yearID uint, plan model.YearlyPlan) (*model.YearlyPlan, error) {
	out, err := doCreate[model.YearlyPlan](ctx, c, scopedPath(yearID, "yearly_plans"), plan)
	if err != nil {
		return nil, fmt.Errorf("create yearly plan: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateYearlyPlan(ctx context.Context, yearID, id uint, patch model.YearlyPlanPatch) (*model.YearlyPlan, error) {
	out, err := doUpdate[model.YearlyPlan](ctx, c, scopedItemPath(yearID, "yearly_plans", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update yearly plan: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteYearlyPlan(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "yearly_plans", id)); err != nil {
		return fmt.Errorf("delete yearly plan: %w", err)
	}
	return nil
}

func (c *Client) ListHabits(ctx context.Context, yearID uint) ([]model.Habit, error) {
	out, err := doList[model.Habit](ctx, c, scopedPath(yearID, "habit_tracker"))
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return out, nil
}

func (c *Client) CreateHabit(ctx context.Context, yearID uint, habit model.Habit) (*model.Habit, error) {
	out, err := doCreate[model.Habit](ctx, c, scopedPath(yearID, "habit_tracker"), habit)
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateHabit(ctx context.Context, yearID, id uint, patch model.HabitPatch) (*model.Habit, error) {
	out, err := doUpdate[model.Habit](ctx, c, scopedItemPath(yearID, "habit_tracker", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update habit: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteHabit(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "habit_tracker", id)); err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}

func (c *Client) ListGratitude(ctx context.Context, yearID uint) ([]model.GratitudeEntry, error) {
	out, err := doList[model.GratitudeEntry](ctx, c, scopedPath(yearID, "gratitude_diary"))
	if err != nil {
		return nil, fmt.Errorf("list gratitude: %w", err)
	}
	return out, nil
}

func (c *Client) CreateGratitudeEntry(ctx context.Context, yearID uint, entry model.GratitudeEntry) (*model.GratitudeEntry, error) {
	out, err := doCreate[model.GratitudeEntry](ctx, c, scopedPath(yearID, "gratitude_diary"), entry)
	if err != nil {
		return nil, fmt.Errorf("create gratitude entry: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateGratitudeEntry(ctx context.Context, yearID, id uint, patch model.GratitudeEntryPatch) (*model.GratitudeEntry, error) {
	out, err := doUpdate[model.GratitudeEntry](ctx, c, scopedItemPath(yearID, "gratitude_diary", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update gratitude entry: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteGratitudeEntry(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "gratitude_diary", id)); err != nil {
		return fmt.Errorf("delete gratitude entry: %w", err)
	}
	return nil
}

func (c *Client) ListReview(ctx context.Context, yearID uint) ([]model.ReviewEntry, error) {
	out, err := doList[model.ReviewEntry](ctx, c, scopedPath(yearID, "review"))
	if err != nil {
		return nil, fmt.Errorf("list review: %w", err)
	}
	return out, nil
}

func (c *Client) CreateReviewEntry(ctx context.Context, yearID uint, entry model.ReviewEntry) (*model.ReviewEntry, error) {
	out, err := doCreate[model.ReviewEntry](ctx, c, scopedPath(yearID, "review"), entry)
	if err != nil {
		return nil, fmt.Errorf("create review entry: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateReviewEntry(ctx context.Context, yearID, id uint, patch model.ReviewEntryPatch) (*model.ReviewEntry, error) {
	out, err := doUpdate[model.ReviewEntry](ctx, c, scopedItemPath(yearID, "review", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update review entry: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteReviewEntry(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "review", id)); err != nil {
		return fmt.Errorf("delete review entry: %w", err)
	}
	return nil
}

func (c *Client) ListMonths(ctx context.Context, yearID uint) ([]model.Month, error) {
	out, err := doList[model.Month](ctx, c, scopedPath(yearID, "months"))
	if err != nil {
		return nil, fmt.Errorf("list months: %w", err)
	}
	return out, nil
}

func (c *Client) CreateMonth(ctx context.Context, yearID uint, month model.Month) (*model.Month, error) {
	out, err := doCreate[model.Month](ctx, c, scopedPath(yearID, "months"), month)
	if err != nil {
		return nil, fmt.Errorf("create month: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateMonth(ctx context.Context, yearID, id uint, patch model.MonthPatch) (*model.Month, error) {
	out, err := doUpdate[model.Month](ctx, c, scopedItemPath(yearID, "months", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update month: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteMonth(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "months", id)); err != nil {
		return fmt.Errorf("delete month: %w", err)
	}
	return nil
}

func (c *Client) ListMonthlyPlans(ctx context.Context, yearID uint) ([]model.MonthlyPlan, error) {
	out, err := doList[model.MonthlyPlan](ctx, c, scopedPath(yearID, "monthly_plans"))
	if err != nil {
		return nil, fmt.Errorf("list monthly plans: %w", err)
	}
	return out, nil
}

func (c *Client) CreateMonthlyPlan(ctx context.Context, yearID uint, plan model.MonthlyPlan) (*model.MonthlyPlan, error) {
	out, err := doCreate[model.MonthlyPlan](ctx, c, scopedPath(yearID, "monthly_plans"), plan)
	if err != nil {
		return nil, fmt.Errorf("create monthly plan: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateMonthlyPlan(ctx context.Context, yearID, id uint, patch model.MonthlyPlanPatch) (*model.MonthlyPlan, error) {
	out, err := doUpdate[model.MonthlyPlan](ctx, c, scopedItemPath(yearID, "monthly_plans", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update monthly plan: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteMonthlyPlan(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "monthly_plans", id)); err != nil {
		return fmt.Errorf("delete monthly plan: %w", err)
	}
	return nil
}

func (c *Client) ListDiary(ctx context.Context, yearID uint) ([]model.DiaryEntry, error) {
	out, err := doList[model.DiaryEntry](ctx, c, scopedPath(yearID, "monthly_diary"))
	if err != nil {
		return nil, fmt.Errorf("list diary: %w", err)
	}
	return out, nil
}

func (c *Client) CreateDiaryEntry(ctx context.Context, yearID uint, entry model.DiaryEntry) (*model.DiaryEntry, error) {
	out, err := doCreate[model.DiaryEntry](ctx, c, scopedPath(yearID, "monthly_diary"), entry)
	if err != nil {
		return nil, fmt.Errorf("create diary entry: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateDiaryEntry(ctx context.Context, yearID, id uint, patch model.DiaryEntryPatch) (*model.DiaryEntry, error) {
	out, err := doUpdate[model.DiaryEntry](ctx, c, scopedItemPath(yearID, "monthly_diary", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update diary entry: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteDiaryEntry(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "monthly_diary", id)); err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	return nil
}

func (c *Client) ListTaskColours(ctx context.Context, yearID uint) ([]model.TaskColour, error) {
	out, err := doList[model.TaskColour](ctx, c, scopedPath(yearID, "task_colours"))
	if err != nil {
		return nil, fmt.Errorf("list task colours: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTaskColour(ctx context.Context, yearID uint, colour model.TaskColour) (*model.TaskColour, error) {
	out, err := doCreate[model.TaskColour](ctx, c, scopedPath(yearID, "task_colours"), colour)
	if err != nil {
		return nil, fmt.Errorf("create task colour: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateTaskColour(ctx context.Context, yearID, id uint, patch model.TaskColourPatch) (*model.TaskColour, error) {
	out, err := doUpdate[model.TaskColour](ctx, c, scopedItemPath(yearID, "task_colours", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update task colour: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteTaskColour(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "task_colours", id)); err != nil {
		return fmt.Errorf("delete task colour: %w", err)
	}
	return nil
}

func (c *Client) ListTaskPopups(ctx context.Context, yearID uint) ([]model.TaskPopup, error) {
	out, err := doList[model.TaskPopup](ctx, c, scopedPath(yearID, "task_popups"))
	if err != nil {
		return nil, fmt.Errorf("list task popups: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTaskPopup(ctx context.Context, yearID uint, popup model.TaskPopup) (*model.TaskPopup, error) {
	out, err := doCreate[model.TaskPopup](ctx, c, scopedPath(yearID, "task_popups"), popup)
	if err != nil {
		return nil, fmt.Errorf("create task popup: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateTaskPopup(ctx context.Context, yearID, id uint, patch model.TaskPopupPatch) (*model.TaskPopup, error) {
	out, err := doUpdate[model.TaskPopup](ctx, c, scopedItemPath(yearID, "task_popups", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update task popup: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteTaskPopup(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "task_popups", id)); err != nil {
		return fmt.Errorf("delete task popup: %w", err)
	}
	return nil
}

func (c *Client) ListBestInMonths(ctx context.Context, yearID uint) ([]model.BestInMonth, error) {
	out, err := doList[model.BestInMonth](ctx, c, scopedPath(yearID, "best_in_months"))
	if err != nil {
		return nil, fmt.Errorf("list best in months: %w", err)
	}
	return out, nil
}

func (c *Client) CreateBestInMonth(ctx context.Context, yearID uint, best model.BestInMonth) (*model.BestInMonth, error) {
	out, err := doCreate[model.BestInMonth](ctx, c, scopedPath(yearID, "best_in_months"), best)
	if err != nil {
		return nil, fmt.Errorf("create best in month: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateBestInMonth(ctx context.Context, yearID, id uint, patch model.BestInMonthPatch) (*model.BestInMonth, error) {
	out, err := doUpdate[model.BestInMonth](ctx, c, scopedItemPath(yearID, "best_in_months", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update best in month: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteBestInMonth(ctx context.Context, yearID, id uint) error {
	if err := doDelete(ctx, c, scopedItemPath(yearID, "best_in_months", id)); err != nil {
		return fmt.Errorf("delete best in month: %w", err)
	}
	return nil
}
