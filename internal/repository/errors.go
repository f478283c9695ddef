package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"year-planner/apperr"
	"year-planner/model"
)

// translate maps GORM's translated driver errors onto the shared taxonomy.
// parent names the entity a foreign key points at, so a violation surfaces
// as "year not found" rather than a bare constraint error.
func translate(err error, entity, parent string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(entity, entity+" already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		if parent != "" {
			return apperr.NotFound(parent)
		}
		return apperr.Internal(err)
	default:
		return apperr.Internal(err)
	}
}

// yearExists guards scoped reads so an unknown year surfaces as not found
// instead of an empty list.
func yearExists(ctx context.Context, db *gorm.DB, yearID uint) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.Year{}).Where("id = ?", yearID).Count(&n).Error; err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.NotFound("year")
	}
	return nil
}
