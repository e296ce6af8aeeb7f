package repositories

import (
	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// FindByID retrieves a comment by its ID
func (r *CommentRepository) FindByID(id string) (models.Comment, error) {
	var comment models.Comment
	result := r.db.First(&comment, "id = ?", id)
	return comment, result.Error
}

// FindByIDWithAuthor retrieves a comment with its author expanded
func (r *CommentRepository) FindByIDWithAuthor(id string) (models.Comment, error) {
	var comment models.Comment
	result := r.db.Preload("User").First(&comment, "id = ?", id)
	return comment, result.Error
}

// FindByTaskID retrieves all comments for a task, oldest first, author expanded
func (r *CommentRepository) FindByTaskID(taskID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	result := r.db.Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments)
	return comments, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	result := r.db.Create(&comment)
	return comment, result.Error
}

// Delete removes a comment from the database
func (r *CommentRepository) Delete(id string) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	return result.Error
}
