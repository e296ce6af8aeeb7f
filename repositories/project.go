package repositories

import (
	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves a project by its ID without expanding relations
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByIDWithRefs retrieves a project with owner and members expanded
func (r *ProjectRepository) FindByIDWithRefs(id string) (models.Project, error) {
	var project models.Project
	result := r.db.Preload("Members").Preload("CreatedBy").First(&project, "id = ?", id)
	return project, result.Error
}

// FindByTitle retrieves a project by its title
func (r *ProjectRepository) FindByTitle(title string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "title = ?", title)
	return project, result.Error
}

// FindVisibleToUser retrieves all projects the user owns or is a member of
func (r *ProjectRepository) FindVisibleToUser(userID string) ([]models.Project, error) {
	memberOf := r.db.Table("project_members").
		Select("project_id").
		Where("user_id = ?", userID)

	projects := make([]models.Project, 0)
	result := r.db.Preload("Members").Preload("CreatedBy").
		Where("created_by_id = ? OR id IN (?)", userID, memberOf).
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := r.db.Save(&project)
	return result.Error
}

// ReplaceMembers swaps the project's member list
func (r *ProjectRepository) ReplaceMembers(project *models.Project, members []models.User) error {
	return r.db.Model(project).Association("Members").Replace(members)
}

// DB returns the database instance for transactional work in the services
func (r *ProjectRepository) DB() *gorm.DB {
	return r.db
}
