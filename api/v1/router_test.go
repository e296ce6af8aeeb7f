package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tasksphere/tasksphere/database"
	"github.com/tasksphere/tasksphere/repositories"
	"github.com/tasksphere/tasksphere/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	deps := Dependencies{
		Auth:     services.NewAuthService(userRepo, "test-secret", time.Hour),
		Projects: services.NewProjectService(projectRepo, userRepo),
		Tasks:    services.NewTaskService(taskRepo, projectRepo),
		Comments: services.NewCommentService(commentRepo, taskRepo),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api"), deps)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	reader := bytes.NewReader(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email string) (token, userID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func TestRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPost, "/api/comments"},
		{http.MethodGet, "/api/auth/me"},
	} {
		w := doJSON(t, router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}

	w := doJSON(t, router, http.MethodGet, "/api/projects", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":  "Alice",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMe(t *testing.T) {
	router := setupRouter(t)
	token, userID := registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decode(t, w, &user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	router := setupRouter(t)
	ownerToken, _ := registerAndLogin(t, router, "Alice", "alice@example.com")
	otherToken, _ := registerAndLogin(t, router, "Bob", "bob@example.com")

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/projects", ownerToken, gin.H{"title": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}
	decode(t, w, &project)
	assert.Equal(t, "add description", project.Description)

	// Duplicate title conflicts
	w = doJSON(t, router, http.MethodPost, "/api/projects", otherToken, gin.H{"title": "Launch"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Missing title is a validation error
	w = doJSON(t, router, http.MethodPost, "/api/projects", ownerToken, gin.H{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-member cannot view
	w = doJSON(t, router, http.MethodGet, "/api/projects/"+project.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Non-owner cannot update or delete
	w = doJSON(t, router, http.MethodPut, "/api/projects/"+project.ID, otherToken, gin.H{"title": "Stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, router, http.MethodDelete, "/api/projects/"+project.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Owner sees it in the list, other user does not
	w = doJSON(t, router, http.MethodGet, "/api/projects", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []json.RawMessage
	decode(t, w, &mine)
	assert.Len(t, mine, 1)

	w = doJSON(t, router, http.MethodGet, "/api/projects", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var theirs []json.RawMessage
	decode(t, w, &theirs)
	assert.Empty(t, theirs)

	// Unknown id is a 404
	w = doJSON(t, router, http.MethodGet, "/api/projects/nope", ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardFlowWithCascade(t *testing.T) {
	router := setupRouter(t)
	token, _ := registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/projects", token, gin.H{"title": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID string `json:"id"`
	}
	decode(t, w, &project)

	// Task against a missing project 404s
	w = doJSON(t, router, http.MethodPost, "/api/tasks", token, gin.H{"title": "Lost", "project": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Create a task; status defaults to todo
	w = doJSON(t, router, http.MethodPost, "/api/tasks", token, gin.H{"title": "Design", "project": project.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &task)
	assert.Equal(t, "todo", task.Status)

	// Move it to done
	w = doJSON(t, router, http.MethodPut, "/api/tasks/"+task.ID, token, gin.H{"status": "done"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/tasks/project/"+project.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []struct {
		Status string `json:"status"`
	}
	decode(t, w, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done", tasks[0].Status)

	// Comment on it
	w = doJSON(t, router, http.MethodPost, "/api/comments", token, gin.H{"text": "ship it", "taskId": task.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Comment against a missing task 404s
	w = doJSON(t, router, http.MethodPost, "/api/comments", token, gin.H{"text": "lost", "taskId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete the project: tasks and comments go with it
	w = doJSON(t, router, http.MethodDelete, "/api/projects/"+project.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/tasks/project/"+project.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &tasks)
	assert.Empty(t, tasks)

	w = doJSON(t, router, http.MethodGet, "/api/comments/task/"+task.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []json.RawMessage
	decode(t, w, &comments)
	assert.Empty(t, comments)
}
