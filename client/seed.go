package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

// SeedTemplate is the starter content provisioned into a fresh year. The
// caller owns the content; the zero template seeds nothing.
type SeedTemplate struct {
	// ReviewQuestions become review entries with blank answers.
	ReviewQuestions []string
	// Months are created as given. See DefaultMonths.
	Months []model.Month
	// Habits form the first tracker week. Rows with an empty WeekStarting
	// get January 1st of the seeded year.
	Habits []model.Habit
}

// DefaultMonths returns the twelve canonical month rows with empty asset
// paths, in calendar order.
func DefaultMonths() []model.Month {
	months := make([]model.Month, 0, len(model.MonthNames))
	for _, name := range model.MonthNames {
		months = append(months, model.Month{MonthName: name})
	}
	return months
}

// DefaultTemplate seeds the twelve months and nothing else.
func DefaultTemplate() SeedTemplate {
	return SeedTemplate{Months: DefaultMonths()}
}

// SeedYear provisions starter content into a freshly created year. Creates
// run one by one; the first failure stops the seed and is returned, so a
// partially seeded year is visible to the caller rather than papered over.
func (c *Client) SeedYear(ctx context.Context, year model.Year, tmpl SeedTemplate) error {
	for _, q := range tmpl.ReviewQuestions {
		if _, err := c.CreateReviewEntry(ctx, year.ID, model.ReviewEntry{Question: q}); err != nil {
			return fmt.Errorf("seed year %d: %w", year.YearNumber, err)
		}
	}
	for _, m := range tmpl.Months {
		if _, err := c.CreateMonth(ctx, year.ID, m); err != nil {
			return fmt.Errorf("seed year %d: %w", year.YearNumber, err)
		}
	}
	weekStart := fmt.Sprintf("%04d-01-01", year.YearNumber)
	for _, h := range tmpl.Habits {
		if h.WeekStarting == "" {
			h.WeekStarting = weekStart
		}
		if _, err := c.CreateHabit(ctx, year.ID, h); err != nil {
			return fmt.Errorf("seed year %d: %w", year.YearNumber, err)
		}
	}
	return nil
}
