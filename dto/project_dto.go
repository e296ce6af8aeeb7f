package dto

// CreateProjectRequest carries the body of POST /api/projects.
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// UpdateProjectRequest carries the body of PUT /api/projects/:id.
// Nil fields are left untouched (partial update).
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Members     *[]string `json:"members"`
}
