package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tasksphere/tasksphere/database"
	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/models"
	"github.com/tasksphere/tasksphere/repositories"
)

// newTestDB opens a uniquely named shared in-memory sqlite database so the
// schema survives across pooled connections for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	projects *ProjectService
	tasks    *TaskService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	return &testEnv{
		db:       db,
		auth:     NewAuthService(userRepo, "test-secret", time.Hour),
		projects: NewProjectService(projectRepo, userRepo),
		tasks:    NewTaskService(taskRepo, projectRepo),
		comments: NewCommentService(commentRepo, taskRepo),
	}
}

func (e *testEnv) registerUser(t *testing.T, name, email string) models.User {
	t.Helper()
	user, err := e.auth.Register(dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createProject(t *testing.T, title, ownerID string, memberIDs ...string) models.Project {
	t.Helper()
	project, err := e.projects.Create(dto.CreateProjectRequest{
		Title:   title,
		Members: memberIDs,
	}, ownerID)
	require.NoError(t, err)
	return project
}

func (e *testEnv) createTask(t *testing.T, title, projectID, creatorID string) models.Task {
	t.Helper()
	task, err := e.tasks.Create(dto.CreateTaskRequest{
		Title:   title,
		Project: projectID,
	}, creatorID)
	require.NoError(t, err)
	return task
}

func (e *testEnv) addComment(t *testing.T, text, taskID, authorID string) models.Comment {
	t.Helper()
	comment, err := e.comments.Add(dto.CreateCommentRequest{
		Text:   text,
		TaskID: taskID,
	}, authorID)
	require.NoError(t, err)
	return comment
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}
