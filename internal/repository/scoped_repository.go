package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"year-planner/apperr"
)

// ScopedRepository gives uniform CRUD to the year-scoped tables. T is the
// row type; entity names it in errors. Every operation filters on year_id,
// so rows can never leak across years.
type ScopedRepository[T any] struct {
	db     *gorm.DB
	entity string
}

func NewScopedRepository[T any](db *gorm.DB, entity string) *ScopedRepository[T] {
	return &ScopedRepository[T]{db: db, entity: entity}
}

func (r *ScopedRepository[T]) List(ctx context.Context, yearID uint) ([]T, error) {
	if err := yearExists(ctx, r.db, yearID); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, err)
	}
	rows := []T{}
	if err := r.db.WithContext(ctx).Where("year_id = ?", yearID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, apperr.Internal(err))
	}
	return rows, nil
}

// Create inserts the row; the caller has already pinned it to its year. The
// id column is omitted so the database always assigns it.
func (r *ScopedRepository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit("id").Create(row).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.entity, translate(err, r.entity, "year"))
	}
	return nil
}

func (r *ScopedRepository[T]) Update(ctx context.Context, yearID, id uint, changes map[string]any) (*T, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("update %s: %w", r.entity, apperr.Validation(r.entity, "no fields to update"))
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ? AND year_id = ?", id, yearID).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update %s: %w", r.entity, translate(res.Error, r.entity, "year"))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update %s: %w", r.entity, apperr.NotFound(r.entity))
	}
	var row T
	if err := r.db.WithContext(ctx).Where("id = ? AND year_id = ?", id, yearID).First(&row).Error; err != nil {
		return nil, fmt.Errorf("update %s: %w", r.entity, translate(err, r.entity, ""))
	}
	return &row, nil
}

func (r *ScopedRepository[T]) Delete(ctx context.Context, yearID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND year_id = ?", id, yearID).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.entity, translate(res.Error, r.entity, ""))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", r.entity, apperr.NotFound(r.entity))
	}
	return nil
}
