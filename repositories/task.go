package repositories

import (
	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByID retrieves a task by its ID without expanding relations
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := r.db.First(&task, "id = ?", id)
	return task, result.Error
}

// FindByIDWithRefs retrieves a task with assignee and creator expanded
func (r *TaskRepository) FindByIDWithRefs(id string) (models.Task, error) {
	var task models.Task
	result := r.db.Preload("AssignedTo").Preload("CreatedBy").First(&task, "id = ?", id)
	return task, result.Error
}

// FindByProjectID retrieves all tasks for a project with assignee and creator expanded
func (r *TaskRepository) FindByProjectID(projectID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	result := r.db.Preload("AssignedTo").Preload("CreatedBy").
		Where("project_id = ?", projectID).
		Find(&tasks)
	return tasks, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := r.db.Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(task models.Task) error {
	result := r.db.Save(&task)
	return result.Error
}

// DB returns the database instance for transactional work in the services
func (r *TaskRepository) DB() *gorm.DB {
	return r.db
}
