package service

import (
	"context"
	"fmt"
	"time"

	"coursework/internal/model"
	"coursework/internal/repository"
)

// CourseFields is the full mutable field set of a course. Update replaces
// all of them at once; courses do not use partial-patch semantics.
type CourseFields struct {
	Name        string
	Code        string
	Color       string
	Description string
}

type CourseService struct {
	courses      *repository.CourseRepository
	tasks        *repository.TaskRepository
	storeTimeout time.Duration
}

func NewCourseService(courses *repository.CourseRepository, tasks *repository.TaskRepository, storeTimeout time.Duration) *CourseService {
	return &CourseService{
		courses:      courses,
		tasks:        tasks,
		storeTimeout: storeTimeout,
	}
}

func (s *CourseService) Create(ctx context.Context, owner *model.User, fields CourseFields) (*model.Course, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	course := &model.Course{
		OwnerID:     owner.ID,
		Name:        fields.Name,
		Code:        fields.Code,
		Color:       fields.Color,
		Description: fields.Description,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, mapStoreErr(err)
	}
	return course, nil
}

func (s *CourseService) ListAll(ctx context.Context, owner *model.User) ([]model.Course, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	courses, err := s.courses.ListByOwner(ctx, owner.ID)
	return courses, mapStoreErr(err)
}

func (s *CourseService) GetOne(ctx context.Context, owner *model.User, rawID string) (*model.Course, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	course, err := s.courses.FetchOwned(ctx, rawID, owner.ID)
	return course, mapStoreErr(err)
}

// Update replaces the full mutable field set of an owned course and returns
// the post-update record.
func (s *CourseService) Update(ctx context.Context, owner *model.User, rawID string, fields CourseFields) (*model.Course, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	course, err := s.courses.FetchOwned(ctx, rawID, owner.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	err = s.courses.UpdateFields(ctx, course.ID, map[string]interface{}{
		"name":        fields.Name,
		"code":        fields.Code,
		"color":       fields.Color,
		"description": fields.Description,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	course.Name = fields.Name
	course.Code = fields.Code
	course.Color = fields.Color
	course.Description = fields.Description
	return course, nil
}

// Delete removes an owned course, then every task referencing it. The two
// deletes are sequential statements with no transaction across them: a crash
// or store failure between them leaves the tasks orphaned. That gap is
// accepted at this system's scale; a cascade failure is surfaced as an
// error distinct from success rather than masked.
func (s *CourseService) Delete(ctx context.Context, owner *model.User, rawID string) error {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	course, err := s.courses.FetchOwned(ctx, rawID, owner.ID)
	if err != nil {
		return mapStoreErr(err)
	}

	if err := s.courses.Delete(ctx, course.ID); err != nil {
		return mapStoreErr(err)
	}

	if _, err := s.tasks.DeleteByCourse(ctx, course.ID); err != nil {
		return fmt.Errorf("course %s deleted but cascade removal of its tasks failed: %w", course.ID, mapStoreErr(err))
	}
	return nil
}
