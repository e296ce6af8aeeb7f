package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/services"
)

// CommentController exposes comment operations.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new comment controller instance
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Add handles POST /api/comments
func (ctrl *CommentController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	comment, err := ctrl.comments.Add(req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListByTask handles GET /api/comments/task/:taskId
func (ctrl *CommentController) ListByTask(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	comments, err := ctrl.comments.ListByTask(c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/:id
func (ctrl *CommentController) Delete(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	if err := ctrl.comments.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
