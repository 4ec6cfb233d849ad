package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/models"
	"tasktracker/internal/storage/sqlite"
)

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// handleCreateTask validates the payload, runs the duplicate guard and
// inserts the task.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("please fill in all fields"))
		return
	}

	priority := models.Priority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityLow
	} else if !priority.Valid() {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown priority %q", req.Priority))
		return
	}

	// The guard and the insert are separate statements; two concurrent
	// creates with the same title can both pass the check.
	_, exists, err := s.store.FindActiveDuplicate(c.Request.Context(), title, time.Now())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	if exists {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("this task already exist and is not yet completed and stiil has a valid due date"))
		return
	}

	if _, err := s.store.CreateTask(c.Request.Context(), models.Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     req.DueDate,
	}); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "task created succesfully"})
}

// handleListTasks returns every stored task.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.store.ListTasks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
}

// handleUpdateStatus marks a task as completed. Completing a task twice is
// allowed and keeps the record completed.
func (s *Server) handleUpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.store.MarkCompleted(c.Request.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrTaskNotFound) {
			s.respondError(c, http.StatusNotFound, err)
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleDeleteTask removes a task and echoes the deleted record.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id := c.Param("id")
	task, err := s.store.DeleteTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrTaskNotFound) {
			s.respondError(c, http.StatusNotFound, err)
			return
		}
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted successfully", "task": task})
}
