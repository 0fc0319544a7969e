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

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

type CourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func courseResponse(course *model.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID.String(),
		Name:        course.Name,
		Code:        course.Code,
		Color:       course.Color,
		Description: course.Description,
		CreatedAt:   course.CreatedAt.Format(time.RFC3339),
	}
}

// Create creates a new course for the authenticated user
// @Summary      Create a course
// @Tags         Courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CourseRequest true "Course data"
// @Success      201 {object} CourseResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), owner, service.CourseFields{
		Name:        req.Name,
		Code:        req.Code,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, courseResponse(course))
}

// GetAll lists all courses owned by the authenticated user
// @Summary      List courses
// @Tags         Courses
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} CourseResponse
// @Router       /courses [get]
func (h *CourseHandler) GetAll(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	courses, err := h.courseService.ListAll(c.Request.Context(), owner)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	response := make([]CourseResponse, len(courses))
	for i := range courses {
		response[i] = courseResponse(&courses[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single owned course
// @Summary      Get a course
// @Tags         Courses
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200 {object} CourseResponse
// @Failure      404 {object} map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetByID(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	course, err := h.courseService.GetOne(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, courseResponse(course))
}

// Update replaces the mutable fields of an owned course
// @Summary      Update a course
// @Tags         Courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Course ID"
// @Param        request body CourseRequest true "Course data"
// @Success      200 {object} CourseResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), owner, c.Param("id"), service.CourseFields{
		Name:        req.Name,
		Code:        req.Code,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, courseResponse(course))
}

// Delete removes an owned course and all of its tasks
// @Summary      Delete a course
// @Tags         Courses
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      204
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		apperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
