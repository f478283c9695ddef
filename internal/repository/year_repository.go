package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"year-planner/apperr"
	"year-planner/model"
)

// YearRepository owns the root aggregate: plain CRUD on year rows plus the
// explicit cascade that removes a year's whole subtree.
type YearRepository struct {
	db *gorm.DB
}

func NewYearRepository(db *gorm.DB) *YearRepository {
	return &YearRepository{db: db}
}

func (r *YearRepository) Create(ctx context.Context, year *model.Year) error {
	if year.YearNumber <= 0 {
		return fmt.Errorf("create year: %w", apperr.Validation("year", "year_number must be positive"))
	}
	year.ID = 0
	if err := r.db.WithContext(ctx).Omit("id").Create(year).Error; err != nil {
		return fmt.Errorf("create year: %w", translate(err, "year", ""))
	}
	return nil
}

func (r *YearRepository) List(ctx context.Context) ([]model.Year, error) {
	years := []model.Year{}
	if err := r.db.WithContext(ctx).Order("year_number").Find(&years).Error; err != nil {
		return nil, fmt.Errorf("list years: %w", apperr.Internal(err))
	}
	return years, nil
}

// Update renames a year and moves every habit week along with it, keeping
// month and day, so the grid stays aligned with the renamed year.
func (r *YearRepository) Update(ctx context.Context, id uint, newNumber int) (*model.Year, error) {
	if newNumber <= 0 {
		return nil, fmt.Errorf("update year: %w", apperr.Validation("year", "year_number must be positive"))
	}
	var updated model.Year
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var year model.Year
		if err := tx.First(&year, id).Error; err != nil {
			return translate(err, "year", "")
		}
		delta := newNumber - year.YearNumber
		if delta != 0 {
			if err := tx.Model(&year).Update("year_number", newNumber).Error; err != nil {
				return translate(err, "year", "")
			}
			var habits []model.Habit
			if err := tx.Where("year_id = ?", id).Find(&habits).Error; err != nil {
				return apperr.Internal(err)
			}
			for _, h := range habits {
				shifted, ok := shiftYears(h.WeekStarting, delta)
				if !ok {
					continue
				}
				if err := tx.Model(&model.Habit{}).Where("id = ?", h.ID).
					Update("week_starting", shifted).Error; err != nil {
					return apperr.Internal(err)
				}
			}
		}
		year.YearNumber = newNumber
		updated = year
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update year: %w", err)
	}
	return &updated, nil
}

// Delete removes the year and every dependent row in one transaction. The
// cascade is written out statement by statement instead of leaning on the
// engine's FK cascade, so it behaves the same on every backend.
func (r *YearRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var year model.Year
		if err := tx.First(&year, id).Error; err != nil {
			return translate(err, "year", "")
		}
		for _, dep := range []any{
			&model.CalendarEvent{},
			&model.YearlyPlan{},
			&model.Habit{},
			&model.GratitudeEntry{},
			&model.ReviewEntry{},
			&model.Month{},
			&model.MonthlyPlan{},
			&model.DiaryEntry{},
			&model.TaskColour{},
			&model.TaskPopup{},
			&model.BestInMonth{},
		} {
			if err := tx.Where("year_id = ?", id).Delete(dep).Error; err != nil {
				return apperr.CascadeIntegrity("year", err)
			}
		}
		if err := tx.Delete(&year).Error; err != nil {
			return apperr.CascadeIntegrity("year", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete year: %w", err)
	}
	return nil
}

// shiftYears moves an ISO date by delta years, preserving month and day.
func shiftYears(date string, delta int) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return t.AddDate(delta, 0, 0).Format("2006-01-02"), true
}
