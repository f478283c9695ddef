package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"year-planner/apperr"
	"year-planner/model"
)

// ReadingRepository handles readings together with their author links.
// Author rows are shared: association rows come and go with readings, the
// authors themselves stay until deleted explicitly.
type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) List(ctx context.Context) ([]model.Reading, error) {
	rows := []model.Reading{}
	if err := r.db.WithContext(ctx).Preload("Authors").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list readings: %w", apperr.Internal(err))
	}
	return rows, nil
}

func (r *ReadingRepository) Create(ctx context.Context, input *model.ReadingInput) (*model.Reading, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("create reading: %w", apperr.Validation("reading", "title is required"))
	}
	reading := model.Reading{
		Title:      input.Title,
		Language:   input.Language,
		Status:     input.Status,
		Link:       input.Link,
		Series:     input.Series,
		BannerPath: input.BannerPath,
		IconPath:   input.IconPath,
		CoverPath:  input.CoverPath,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authors, err := upsertAuthors(tx, input.Authors)
		if err != nil {
			return err
		}
		reading.Authors = authors
		if err := tx.Omit("id").Create(&reading).Error; err != nil {
			return translate(err, "reading", "")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create reading: %w", err)
	}
	return &reading, nil
}

func (r *ReadingRepository) Update(ctx context.Context, id uint, patch model.ReadingPatch) (*model.Reading, error) {
	changes := patch.Changes()
	if len(changes) == 0 && patch.Authors == nil {
		return nil, fmt.Errorf("update reading: %w", apperr.Validation("reading", "no fields to update"))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reading model.Reading
		if err := tx.First(&reading, id).Error; err != nil {
			return translate(err, "reading", "")
		}
		if len(changes) > 0 {
			if err := tx.Model(&reading).Updates(changes).Error; err != nil {
				return translate(err, "reading", "")
			}
		}
		if patch.Authors != nil {
			authors, err := upsertAuthors(tx, *patch.Authors)
			if err != nil {
				return err
			}
			assoc := tx.Model(&reading).Association("Authors")
			if len(authors) == 0 {
				if err := assoc.Clear(); err != nil {
					return apperr.Internal(err)
				}
			} else if err := assoc.Replace(authors); err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update reading: %w", err)
	}
	var out model.Reading
	if err := r.db.WithContext(ctx).Preload("Authors").First(&out, id).Error; err != nil {
		return nil, fmt.Errorf("update reading: %w", translate(err, "reading", ""))
	}
	return &out, nil
}

// Delete removes the reading and its association rows; authors stay.
func (r *ReadingRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reading model.Reading
		if err := tx.First(&reading, id).Error; err != nil {
			return translate(err, "reading", "")
		}
		if err := tx.Model(&reading).Association("Authors").Clear(); err != nil {
			return apperr.CascadeIntegrity("reading", err)
		}
		if err := tx.Delete(&reading).Error; err != nil {
			return apperr.CascadeIntegrity("reading", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	return nil
}

func (r *ReadingRepository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	rows := []model.Author{}
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list authors: %w", apperr.Internal(err))
	}
	return rows, nil
}

// DeleteAuthor removes the author and its association rows; readings stay.
func (r *ReadingRepository) DeleteAuthor(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author model.Author
		if err := tx.First(&author, id).Error; err != nil {
			return translate(err, "author", "")
		}
		if err := tx.Exec("DELETE FROM reading_authors WHERE author_id = ?", id).Error; err != nil {
			return apperr.CascadeIntegrity("author", err)
		}
		if err := tx.Delete(&author).Error; err != nil {
			return apperr.CascadeIntegrity("author", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// upsertAuthors resolves names to author rows, creating missing ones.
// Blank and repeated names are dropped.
func upsertAuthors(tx *gorm.DB, names []string) ([]model.Author, error) {
	var authors []model.Author
	seen := map[string]bool{}
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		var author model.Author
		err := tx.Where("name = ?", name).First(&author).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			author = model.Author{Name: name}
			if err := tx.Create(&author).Error; err != nil {
				return nil, translate(err, "author", "")
			}
		case err != nil:
			return nil, apperr.Internal(err)
		}
		authors = append(authors, author)
	}
	return authors, nil
}
