package repository

import (
	"context"
	"errors"

	"coursework/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// ListByOwner returns all courses owned by ownerID in store order.
func (r *CourseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&courses).Error
	return courses, err
}

// FetchOwned resolves a raw course id against ownerID via the ownership guard.
func (r *CourseRepository) FetchOwned(ctx context.Context, rawID string, ownerID uuid.UUID) (*model.Course, error) {
	return FetchOwned[model.Course](ctx, r.db, rawID, ownerID)
}

// ExistsOwned reports whether a course with the given id belongs to ownerID.
// Used by task creation to re-check the referenced course.
func (r *CourseRepository) ExistsOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	var course model.Course
	err := r.db.WithContext(ctx).Select("id").Where("id = ? AND owner_id = ?", id, ownerID).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateFields overwrites the full mutable field set of a course and returns
// nothing extra; courses use full-replace semantics, unlike tasks.
func (r *CourseRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id).Error
}
