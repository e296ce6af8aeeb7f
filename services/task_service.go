package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/apperrors"
	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/models"
	"github.com/tasksphere/tasksphere/repositories"
)

// TaskService handles business logic for tasks, including the explicit
// Task → Comment cascade on delete.
type TaskService struct {
	tasks    *repositories.TaskRepository
	projects *repositories.ProjectRepository
}

// NewTaskService creates a new task service instance
func NewTaskService(tasks *repositories.TaskRepository, projects *repositories.ProjectRepository) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
	}
}

// Create creates a task under an existing project. Status defaults to todo.
func (s *TaskService) Create(req dto.CreateTaskRequest, creatorID string) (models.Task, error) {
	if _, err := s.projects.FindByID(req.Project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperrors.NotFound("Project not found")
		}
		return models.Task{}, apperrors.Internal(err)
	}

	status := models.TaskStatusTodo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.Valid() {
			return models.Task{}, apperrors.Validation("invalid status")
		}
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = models.DefaultDescription
	}

	task := models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: description,
		Status:      status,
		ProjectID:   req.Project,
		CreatedByID: creatorID,
		DueDate:     req.DueDate,
	}
	if req.AssignedTo != "" {
		assignee := req.AssignedTo
		task.AssignedToID = &assignee
	}

	created, err := s.tasks.Create(task)
	if err != nil {
		return models.Task{}, apperrors.Internal(err)
	}

	withRefs, err := s.tasks.FindByIDWithRefs(created.ID)
	if err != nil {
		return models.Task{}, apperrors.Internal(err)
	}
	return withRefs, nil
}

// ListByProject returns all tasks of a project with assignee and creator expanded.
func (s *TaskService) ListByProject(projectID string) ([]models.Task, error) {
	tasks, err := s.tasks.FindByProjectID(projectID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return tasks, nil
}

// Update applies the supplied fields to a task. Only the creator or the
// current assignee may edit; unset fields are left untouched.
func (s *TaskService) Update(taskID, userID string, req dto.UpdateTaskRequest) (models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperrors.NotFound("Task not found")
		}
		return models.Task{}, apperrors.Internal(err)
	}

	if !task.EditableBy(userID) {
		return models.Task{}, apperrors.Forbidden("Access denied")
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			return models.Task{}, apperrors.Validation("invalid status")
		}
		task.Status = status
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			task.AssignedToID = nil
		} else {
			task.AssignedToID = req.AssignedTo
		}
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.tasks.Update(task); err != nil {
		return models.Task{}, apperrors.Internal(err)
	}

	withRefs, err := s.tasks.FindByIDWithRefs(taskID)
	if err != nil {
		return models.Task{}, apperrors.Internal(err)
	}
	return withRefs, nil
}

// Delete removes a task and all its comments in one transaction. No
// ownership check: any authenticated user may delete any task.
func (s *TaskService) Delete(taskID string) error {
	if _, err := s.tasks.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Task not found")
		}
		return apperrors.Internal(err)
	}

	err := s.tasks.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, "id = ?", taskID).Error
	})
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
