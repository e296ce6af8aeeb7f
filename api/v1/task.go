package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/services"
)

// TaskController exposes task CRUD.
type TaskController struct {
	tasks *services.TaskService
}

// NewTaskController creates a new task controller instance
func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

// Create handles POST /api/tasks
func (ctrl *TaskController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	task, err := ctrl.tasks.Create(req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ListByProject handles GET /api/tasks/project/:projectId
func (ctrl *TaskController) ListByProject(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	tasks, err := ctrl.tasks.ListByProject(c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /api/tasks/:id
func (ctrl *TaskController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	task, err := ctrl.tasks.Update(c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id
func (ctrl *TaskController) Delete(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	if err := ctrl.tasks.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task and related comments deleted successfully"})
}
