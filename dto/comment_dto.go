package dto

// CreateCommentRequest carries the body of POST /api/comments.
type CreateCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	TaskID string `json:"taskId" binding:"required"`
}
