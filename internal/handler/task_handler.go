package handler

import (
	"net/http"
	"time"

	"coursework/internal/apperr"
	"coursework/internal/middleware"
	"coursework/internal/model"
	"coursework/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type TaskCreateRequest struct {
	CourseID    string     `json:"course_id" binding:"required"`
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      string     `json:"status" binding:"omitempty,oneof=active complete"`
}

// TaskUpdateRequest carries a partial patch: nil fields were absent from the
// request body and are left unchanged.
type TaskUpdateRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active complete"`
}

type TaskListQuery struct {
	CourseID string `form:"course_id"`
	Status   string `form:"status" binding:"omitempty,oneof=active complete"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=due_date priority"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	Skip     int    `form:"skip" binding:"omitempty,min=0"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

func taskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID.String(),
		CourseID:    task.CourseID.String(),
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.RFC3339)
		response.DueDate = &dueDate
	}
	return response
}

// Create creates a task under one of the user's courses
// @Summary      Create a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body TaskCreateRequest true "Task data"
// @Success      201 {object} TaskResponse
// @Failure      404 {object} map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), owner, service.TaskInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    model.TaskPriority(req.Priority),
		Status:      model.TaskStatus(req.Status),
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task))
}

// List lists the user's tasks with optional filtering, sorting and paging
// @Summary      List tasks
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        course_id query string false "Filter by course"
// @Param        status    query string false "Filter by status"    Enums(active, complete)
// @Param        priority  query string false "Filter by priority"  Enums(low, medium, high)
// @Param        sort_by   query string false "Sort key"            Enums(due_date, priority)
// @Param        order     query string false "Sort direction"      Enums(asc, desc)
// @Param        skip      query int    false "Results to skip"
// @Param        limit     query int    false "Page size (default 10)"
// @Success      200 {array} TaskResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var query TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	opts := service.ListOptions{
		CourseID:   query.CourseID,
		SortBy:     query.SortBy,
		Descending: query.Order == "desc",
		Skip:       query.Skip,
		Limit:      query.Limit,
	}
	if status, ok := model.ParseStatus(query.Status); ok {
		opts.Status = &status
	}
	if priority, ok := model.ParsePriority(query.Priority); ok {
		opts.Priority = &priority
	}

	tasks, err := h.taskService.List(c.Request.Context(), owner, opts)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single owned task
// @Summary      Get a task
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} TaskResponse
// @Failure      404 {object} map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	task, err := h.taskService.GetOne(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Update applies a partial patch to an owned task
// @Summary      Update a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        request body TaskUpdateRequest true "Fields to change"
// @Success      200 {object} TaskResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Priority != nil {
		priority := model.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.taskService.Update(c.Request.Context(), owner, c.Param("id"), patch)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Delete removes an owned task
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      204
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		apperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
