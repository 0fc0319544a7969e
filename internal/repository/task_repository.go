package repository

import (
	"context"
	"fmt"

	"coursework/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sort keys accepted by TaskFilter.
const (
	SortDueDate  = "due_date"
	SortPriority = "priority"
)

// DefaultLimit is the page size applied when the caller supplies none.
const DefaultLimit = 10

// priorityOrdinalExpr ranks priority tiers numerically so that ordering is
// high > medium > low > anything else, instead of the lexicographic order a
// plain ORDER BY priority would give.
const priorityOrdinalExpr = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

// TaskFilter describes an owner-scoped task list query. Nil pointer fields
// leave the corresponding filter off. Skip and Limit apply after filtering
// and sorting.
type TaskFilter struct {
	OwnerID    uuid.UUID
	CourseID   *uuid.UUID
	Status     *model.TaskStatus
	Priority   *model.TaskPriority
	SortBy     string // SortDueDate, SortPriority, or "" for store order
	Descending bool
	Skip       int
	Limit      int
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FetchOwned resolves a raw task id against ownerID via the ownership guard.
func (r *TaskRepository) FetchOwned(ctx context.Context, rawID string, ownerID uuid.UUID) (*model.Task, error) {
	return FetchOwned[model.Task](ctx, r.db, rawID, ownerID)
}

// List runs the query described by filter.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("owner_id = ?", filter.OwnerID)

	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	dir := "ASC"
	if filter.Descending {
		dir = "DESC"
	}
	switch filter.SortBy {
	case SortDueDate:
		// Ties on due date break by descending priority ordinal.
		query = query.Order(fmt.Sprintf("due_date %s", dir)).
			Order(priorityOrdinalExpr + " DESC")
	case SortPriority:
		query = query.Order(fmt.Sprintf("%s %s", priorityOrdinalExpr, dir))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	query = query.Limit(limit)

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields applies a partial patch; only the keys present in fields are
// written.
func (r *TaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

// DeleteByCourse removes every task referencing courseID, regardless of the
// task's own owner_id: the caller has already proven course ownership.
func (r *TaskRepository) DeleteByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "course_id = ?", courseID)
	return result.RowsAffected, result.Error
}
