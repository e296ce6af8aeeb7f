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

// ProjectService handles business logic for projects, including the explicit
// Project → Task → Comment cascade on delete.
type ProjectService struct {
	projects *repositories.ProjectRepository
	users    *repositories.UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projects *repositories.ProjectRepository, users *repositories.UserRepository) *ProjectService {
	return &ProjectService{
		projects: projects,
		users:    users,
	}
}

// Create creates a project owned by ownerID. Titles are unique system-wide.
func (s *ProjectService) Create(req dto.CreateProjectRequest, ownerID string) (models.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Project{}, apperrors.Validation("title missing")
	}

	if err := s.ensureTitleFree(title); err != nil {
		return models.Project{}, err
	}

	members, err := s.users.FindByIDs(req.Members)
	if err != nil {
		return models.Project{}, apperrors.Internal(err)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = models.DefaultDescription
	}

	project := models.Project{
		Title:       title,
		Description: description,
		Members:     members,
		CreatedByID: ownerID,
	}
	created, err := s.projects.Create(project)
	if err != nil {
		return models.Project{}, apperrors.Internal(err)
	}

	return s.loadWithRefs(created.ID)
}

// List returns every project the user owns or is a member of.
func (s *ProjectService) List(userID string) ([]models.Project, error) {
	projects, err := s.projects.FindVisibleToUser(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return projects, nil
}

// Get returns a single project. Access is limited to the owner and members.
func (s *ProjectService) Get(projectID, userID string) (models.Project, error) {
	project, err := s.projects.FindByIDWithRefs(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFound("Project not found")
		}
		return models.Project{}, apperrors.Internal(err)
	}

	if project.CreatedByID != userID && !project.HasMember(userID) {
		return models.Project{}, apperrors.Forbidden("Access denied")
	}
	return project, nil
}

// Update applies the supplied fields to a project. Owner only; unset fields
// are left untouched.
func (s *ProjectService) Update(projectID, userID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFound("Project not found")
		}
		return models.Project{}, apperrors.Internal(err)
	}

	if project.CreatedByID != userID {
		return models.Project{}, apperrors.Forbidden("Access denied")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != "" && title != project.Title {
			if err := s.ensureTitleFree(title); err != nil {
				return models.Project{}, err
			}
			project.Title = title
		}
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.projects.Update(project); err != nil {
		return models.Project{}, apperrors.Internal(err)
	}

	if req.Members != nil {
		members, err := s.users.FindByIDs(*req.Members)
		if err != nil {
			return models.Project{}, apperrors.Internal(err)
		}
		if err := s.projects.ReplaceMembers(&project, members); err != nil {
			return models.Project{}, apperrors.Internal(err)
		}
	}

	return s.loadWithRefs(projectID)
}

// Delete removes a project, all its tasks and all comments on those tasks.
// The cascade runs children-first inside one transaction so a failure leaves
// no orphans.
func (s *ProjectService) Delete(projectID, userID string) error {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Project not found")
		}
		return apperrors.Internal(err)
	}

	if project.CreatedByID != userID {
		return apperrors.Forbidden("Access denied")
	}

	err = s.projects.DB().Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).Where("project_id = ?", projectID).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM project_members WHERE project_id = ?", projectID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", projectID).Error
	})
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *ProjectService) ensureTitleFree(title string) error {
	_, err := s.projects.FindByTitle(title)
	if err == nil {
		return apperrors.Conflict("title unavailable")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *ProjectService) loadWithRefs(projectID string) (models.Project, error) {
	project, err := s.projects.FindByIDWithRefs(projectID)
	if err != nil {
		return models.Project{}, apperrors.Internal(err)
	}
	return project, nil
}
