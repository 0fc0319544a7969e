package service

import (
	"context"
	"time"

	"coursework/internal/apperr"
	"coursework/internal/model"
	"coursework/internal/repository"

	"github.com/google/uuid"
)

// TaskInput describes a task to create. Priority and Status fall back to
// their defaults when empty.
type TaskInput struct {
	CourseID    string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.TaskPriority
	Status      model.TaskStatus
}

// TaskPatch is a partial update: nil fields were not supplied by the caller
// and stay untouched. Presence is carried by the pointers themselves, never
// inferred from zero values.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *model.TaskPriority
	Status      *model.TaskStatus
}

// ListOptions narrows and orders an owner-scoped task listing.
type ListOptions struct {
	CourseID   string // raw id, empty for no course filter
	Status     *model.TaskStatus
	Priority   *model.TaskPriority
	SortBy     string // repository.SortDueDate, repository.SortPriority, or ""
	Descending bool
	Skip       int
	Limit      int
}

type TaskService struct {
	tasks        *repository.TaskRepository
	courses      *repository.CourseRepository
	storeTimeout time.Duration
}

func NewTaskService(tasks *repository.TaskRepository, courses *repository.CourseRepository, storeTimeout time.Duration) *TaskService {
	return &TaskService{
		tasks:        tasks,
		courses:      courses,
		storeTimeout: storeTimeout,
	}
}

// Create inserts a task after re-checking that the referenced course exists
// and belongs to owner. A foreign or absent course yields
// apperr.ErrCourseNotFound; the caller learns nothing about whether the
// course exists under another user.
func (s *TaskService) Create(ctx context.Context, owner *model.User, input TaskInput) (*model.Task, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	courseID, err := uuid.Parse(input.CourseID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}

	owned, err := s.courses.ExistsOwned(ctx, courseID, owner.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !owned {
		return nil, apperr.ErrCourseNotFound
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	status := input.Status
	if status == "" {
		status = model.StatusActive
	}

	task := &model.Task{
		OwnerID:     owner.ID,
		CourseID:    courseID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Status:      status,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, mapStoreErr(err)
	}
	return task, nil
}

// List returns the owner's tasks per opts.
func (s *TaskService) List(ctx context.Context, owner *model.User, opts ListOptions) ([]model.Task, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	filter := repository.TaskFilter{
		OwnerID:    owner.ID,
		Status:     opts.Status,
		Priority:   opts.Priority,
		SortBy:     opts.SortBy,
		Descending: opts.Descending,
		Skip:       opts.Skip,
		Limit:      opts.Limit,
	}

	if opts.CourseID != "" {
		courseID, err := uuid.Parse(opts.CourseID)
		if err != nil {
			return nil, apperr.ErrInvalidID
		}
		filter.CourseID = &courseID
	}

	tasks, err := s.tasks.List(ctx, filter)
	return tasks, mapStoreErr(err)
}

func (s *TaskService) GetOne(ctx context.Context, owner *model.User, rawID string) (*model.Task, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	task, err := s.tasks.FetchOwned(ctx, rawID, owner.ID)
	return task, mapStoreErr(err)
}

// Update applies a partial patch to an owned task. An empty patch skips the
// write entirely and returns the current record.
func (s *TaskService) Update(ctx context.Context, owner *model.User, rawID string, patch TaskPatch) (*model.Task, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	task, err := s.tasks.FetchOwned(ctx, rawID, owner.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		fields["due_date"] = *patch.DueDate
		task.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
		task.Status = *patch.Status
	}

	if len(fields) == 0 {
		return task, nil
	}

	if err := s.tasks.UpdateFields(ctx, task.ID, fields); err != nil {
		return nil, mapStoreErr(err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, owner *model.User, rawID string) error {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	task, err := s.tasks.FetchOwned(ctx, rawID, owner.ID)
	if err != nil {
		return mapStoreErr(err)
	}
	return mapStoreErr(s.tasks.Delete(ctx, task.ID))
}
