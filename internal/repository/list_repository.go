package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"year-planner/apperr"
)

// ListRepository covers the flat year-independent collections (goals,
// courses, wishlist) that share the same CRUD shape.
type ListRepository[T any] struct {
	db     *gorm.DB
	entity string
}

func NewListRepository[T any](db *gorm.DB, entity string) *ListRepository[T] {
	return &ListRepository[T]{db: db, entity: entity}
}

func (r *ListRepository[T]) List(ctx context.Context) ([]T, error) {
	rows := []T{}
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, apperr.Internal(err))
	}
	return rows, nil
}

func (r *ListRepository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit("id").Create(row).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.entity, translate(err, r.entity, ""))
	}
	return nil
}

func (r *ListRepository[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("update %s: %w", r.entity, apperr.Validation(r.entity, "no fields to update"))
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update %s: %w", r.entity, translate(res.Error, r.entity, ""))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update %s: %w", r.entity, apperr.NotFound(r.entity))
	}
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("update %s: %w", r.entity, translate(err, r.entity, ""))
	}
	return &row, nil
}

func (r *ListRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.entity, translate(res.Error, r.entity, ""))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", r.entity, apperr.NotFound(r.entity))
	}
	return nil
}
