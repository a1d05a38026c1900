package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tasklist/internal/repository"
	"tasklist/internal/service"
)

const msgTaskNotFound = "Task not found."

// taskPayload is the request body for create and update. A missing
// privateTask field defaults to true.
type taskPayload struct {
	Description string     `json:"description"`
	Project     string     `json:"project"`
	Important   bool       `json:"important"`
	Private     *bool      `json:"privateTask"`
	Deadline    *time.Time `json:"deadline"`
	Completed   bool       `json:"completed"`
}

func (p taskPayload) toInput() service.TaskInput {
	private := true
	if p.Private != nil {
		private = *p.Private
	}
	return service.TaskInput{
		Description: p.Description,
		Project:     p.Project,
		Important:   p.Important,
		Private:     private,
		Deadline:    p.Deadline,
		Completed:   p.Completed,
	}
}

func (s *Server) listTasks(c *gin.Context) {
	identity := currentIdentity(c)
	tasks, _, err := s.tasks.List(c.Request.Context(), identity.ID, c.Query("filter"), time.Now())
	if err != nil {
		log.Printf("list tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"errors": []gin.H{{"msg": "failed to load tasks"}},
		})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	identity := currentIdentity(c)
	task, err := s.tasks.Get(c.Request.Context(), taskID, identity.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
	case err != nil:
		log.Printf("get task: %v", err)
		c.JSON(http.StatusInternalServerError, serverErrors("failed to load task"))
	default:
		c.JSON(http.StatusOK, task)
	}
}

func (s *Server) createTask(c *gin.Context) {
	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrors("body", "invalid task payload"))
		return
	}

	identity := currentIdentity(c)
	id, err := s.tasks.Create(c.Request.Context(), identity.ID, payload.toInput())
	switch {
	case errors.Is(err, service.ErrEmptyDescription):
		c.JSON(http.StatusUnprocessableEntity, validationErrors("description", err.Error()))
	case err != nil:
		log.Printf("create task: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to store task"})
	default:
		c.Header("Location", fmt.Sprintf("/api/tasks/%d", id))
		c.Status(http.StatusCreated)
	}
}

func (s *Server) updateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrors("body", "invalid task payload"))
		return
	}

	identity := currentIdentity(c)
	err := s.tasks.Update(c.Request.Context(), taskID, identity.ID, payload.toInput())
	switch {
	case errors.Is(err, service.ErrEmptyDescription):
		c.JSON(http.StatusUnprocessableEntity, validationErrors("description", err.Error()))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
	case err != nil:
		log.Printf("update task: %v", err)
		c.JSON(http.StatusInternalServerError, serverErrors("failed to update task"))
	default:
		c.Status(http.StatusOK)
	}
}

func (s *Server) deleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	identity := currentIdentity(c)
	err := s.tasks.Delete(c.Request.Context(), taskID, identity.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
	case err != nil:
		log.Printf("delete task: %v", err)
		c.JSON(http.StatusInternalServerError, serverErrors("failed to delete task"))
	default:
		c.Status(http.StatusNoContent)
	}
}

// parseTaskID reads the :id route param. A malformed id answers exactly
// like a missing task so existence is never leaked.
func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTaskNotFound})
		return 0, false
	}
	return uint(id), true
}

func validationErrors(param, msg string) gin.H {
	return gin.H{"errors": []gin.H{{"param": param, "msg": msg}}}
}

func serverErrors(msg string) gin.H {
	return gin.H{"errors": []gin.H{{"param": "Server", "msg": msg}}}
}
