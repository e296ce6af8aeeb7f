package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/apperrors"
	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/models"
	"github.com/tasksphere/tasksphere/repositories"
)

// CommentService handles business logic for comments.
type CommentService struct {
	comments *repositories.CommentRepository
	tasks    *repositories.TaskRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService(comments *repositories.CommentRepository, tasks *repositories.TaskRepository) *CommentService {
	return &CommentService{
		comments: comments,
		tasks:    tasks,
	}
}

// Add attaches a comment to an existing task.
func (s *CommentService) Add(req dto.CreateCommentRequest, authorID string) (models.Comment, error) {
	if _, err := s.tasks.FindByID(req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, apperrors.NotFound("Task not found")
		}
		return models.Comment{}, apperrors.Internal(err)
	}

	comment := models.Comment{
		Text:   req.Text,
		TaskID: req.TaskID,
		UserID: authorID,
	}
	created, err := s.comments.Create(comment)
	if err != nil {
		return models.Comment{}, apperrors.Internal(err)
	}

	withAuthor, err := s.comments.FindByIDWithAuthor(created.ID)
	if err != nil {
		return models.Comment{}, apperrors.Internal(err)
	}
	return withAuthor, nil
}

// ListByTask returns a task's comments oldest-first with authors expanded.
func (s *CommentService) ListByTask(taskID string) ([]models.Comment, error) {
	comments, err := s.comments.FindByTaskID(taskID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return comments, nil
}

// Delete removes a comment. No ownership check: any authenticated user may
// delete any comment.
func (s *CommentService) Delete(commentID string) error {
	if _, err := s.comments.FindByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Comment not found")
		}
		return apperrors.Internal(err)
	}

	if err := s.comments.Delete(commentID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
