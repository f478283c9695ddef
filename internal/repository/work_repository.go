package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"year-planner/apperr"
	"year-planner/model"
)

// WorkRepository handles work items and their timestamped notes.
type WorkRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

func (r *WorkRepository) List(ctx context.Context) ([]model.Work, error) {
	rows := []model.Work{}
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list work: %w", apperr.Internal(err))
	}
	return rows, nil
}

func (r *WorkRepository) Create(ctx context.Context, work *model.Work) error {
	work.Notes = nil
	if err := r.db.WithContext(ctx).Omit("id").Create(work).Error; err != nil {
		return fmt.Errorf("create work: %w", translate(err, "work", ""))
	}
	return nil
}

func (r *WorkRepository) Update(ctx context.Context, id uint, changes map[string]any) (*model.Work, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("update work: %w", apperr.Validation("work", "no fields to update"))
	}
	res := r.db.WithContext(ctx).Model(&model.Work{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update work: %w", translate(res.Error, "work", ""))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update work: %w", apperr.NotFound("work"))
	}
	var work model.Work
	if err := r.db.WithContext(ctx).First(&work, id).Error; err != nil {
		return nil, fmt.Errorf("update work: %w", translate(err, "work", ""))
	}
	return &work, nil
}

// Delete removes the work item and all of its notes in one transaction.
func (r *WorkRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var work model.Work
		if err := tx.First(&work, id).Error; err != nil {
			return translate(err, "work", "")
		}
		if err := tx.Where("work_id = ?", id).Delete(&model.WorkNote{}).Error; err != nil {
			return apperr.CascadeIntegrity("work", err)
		}
		if err := tx.Delete(&work).Error; err != nil {
			return apperr.CascadeIntegrity("work", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	return nil
}

// ListNotes returns a work item's notes newest first.
func (r *WorkRepository) ListNotes(ctx context.Context, workID uint) ([]model.WorkNote, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Work{}).Where("id = ?", workID).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("list work notes: %w", apperr.Internal(err))
	}
	if n == 0 {
		return nil, fmt.Errorf("list work notes: %w", apperr.NotFound("work"))
	}
	rows := []model.WorkNote{}
	if err := r.db.WithContext(ctx).Where("work_id = ?", workID).
		Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list work notes: %w", apperr.Internal(err))
	}
	return rows, nil
}

func (r *WorkRepository) CreateNote(ctx context.Context, note *model.WorkNote) error {
	if err := r.db.WithContext(ctx).Omit("id").Create(note).Error; err != nil {
		return fmt.Errorf("create work note: %w", translate(err, "work note", "work"))
	}
	return nil
}

func (r *WorkRepository) UpdateNote(ctx context.Context, workID, id uint, changes map[string]any) (*model.WorkNote, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("update work note: %w", apperr.Validation("work note", "no fields to update"))
	}
	res := r.db.WithContext(ctx).Model(&model.WorkNote{}).
		Where("id = ? AND work_id = ?", id, workID).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update work note: %w", translate(res.Error, "work note", ""))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update work note: %w", apperr.NotFound("work note"))
	}
	var note model.WorkNote
	if err := r.db.WithContext(ctx).Where("id = ? AND work_id = ?", id, workID).First(&note).Error; err != nil {
		return nil, fmt.Errorf("update work note: %w", translate(err, "work note", ""))
	}
	return &note, nil
}

func (r *WorkRepository) DeleteNote(ctx context.Context, workID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND work_id = ?", id, workID).Delete(&model.WorkNote{})
	if res.Error != nil {
		return fmt.Errorf("delete work note: %w", translate(res.Error, "work note", ""))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete work note: %w", apperr.NotFound("work note"))
	}
	return nil
}
