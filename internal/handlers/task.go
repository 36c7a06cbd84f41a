package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rithvikm007/Todo/internal/auth"
	dom "github.com/rithvikm007/Todo/internal/domain"
	"github.com/rithvikm007/Todo/internal/dto"
	"github.com/rithvikm007/Todo/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles the task CRUD routes. All of them sit behind
// auth.RequireAuth, so a missing identity here is a wiring bug.
type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary      List own tasks
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.TaskResponse
// @Failure      401  {object}  map[string]string
// @Router       /todos [get]
func (h *TaskHandler) List(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	list, err := h.svc.List(c.Request.Context(), identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, tasksToResponses(list))
}

// Create godoc
// @Summary      Create a task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /todos [post]
func (h *TaskHandler) Create(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), identity.UserID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrTitleEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Update godoc
// @Summary      Update a task (partial)
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Fields to change"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), identity.UserID, id, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.DeleteTaskResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Delete(c.Request.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteTaskResponse{Success: true, Item: taskToResponse(t)})
}

// parseID reads the :id path param. A non-numeric id can never match a
// stored task, so it gets the same 404 as an unknown one.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		OwnerID:   t.OwnerID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
