package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Aruntata-2001/task-manager/internal/auth"
	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/dto"
	"github.com/Aruntata-2001/task-manager/internal/repo"
	"github.com/Aruntata-2001/task-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	svc *service.TaskService
	log *zap.Logger
}

func NewTaskHandler(svc *service.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		DueDate:     req.DueDate.Ptr(),
		Status:      dom.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.log.Error("create task failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating task"})
		return
	}
	c.JSON(http.StatusCreated, dto.TaskToResponse(t))
}

// List godoc
// @Summary      List tasks with optional filters
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "pending or completed"
// @Param        category  query  string  false  "exact category match"
// @Param        search    query  string  false  "case-insensitive title substring"
// @Success      200  {array}   dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	f := repo.TaskFilter{
		Status:   dom.Status(c.Query("status")),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.log.Error("list tasks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.TasksToResponses(list))
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		h.respondTaskError(c, err, "Error fetching task")
		return
	}
	c.JSON(http.StatusOK, dto.TaskToResponse(t))
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	var duePtr *time.Time
	if req.DueDate != nil {
		duePtr = req.DueDate.Ptr()
	}
	var statusPtr *dom.Status
	if req.Status != nil {
		s := dom.Status(*req.Status)
		statusPtr = &s
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		DueDate:     duePtr,
		Status:      statusPtr,
	})
	if err != nil {
		h.respondTaskError(c, err, "Error updating task")
		return
	}
	c.JSON(http.StatusOK, dto.TaskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		h.respondTaskError(c, err, "Error deleting task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Toggle godoc
// @Summary      Toggle a task between pending and completed
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/toggle [patch]
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Toggle(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		h.respondTaskError(c, err, "Error updating task status")
		return
	}
	c.JSON(http.StatusOK, dto.TaskToResponse(t))
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	case errors.Is(err, service.ErrEmptyTitle), errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.log.Error(generic, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": generic})
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}
