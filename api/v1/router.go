package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/tasksphere/tasksphere/middleware"
	"github.com/tasksphere/tasksphere/services"
)

// Dependencies carries the constructed services into the route table.
type Dependencies struct {
	Auth     *services.AuthService
	Projects *services.ProjectService
	Tasks    *services.TaskService
	Comments *services.CommentService
}

// RegisterRoutes registers all API routes. Everything except registration and
// login sits behind the bearer-token middleware.
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authGate := middleware.AuthMiddleware(deps.Auth)

	// Auth endpoints
	authController := NewAuthController(deps.Auth)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", authGate, authController.Me)
	}

	// Project endpoints - protected by AuthMiddleware
	projectController := NewProjectController(deps.Projects)
	projectGroup := router.Group("/projects")
	projectGroup.Use(authGate)
	{
		projectGroup.POST("", projectController.Create)
		projectGroup.GET("", projectController.List)
		projectGroup.GET("/:id", projectController.Get)
		projectGroup.PUT("/:id", projectController.Update)
		projectGroup.DELETE("/:id", projectController.Delete)
	}

	// Task endpoints - protected by AuthMiddleware
	taskController := NewTaskController(deps.Tasks)
	taskGroup := router.Group("/tasks")
	taskGroup.Use(authGate)
	{
		taskGroup.POST("", taskController.Create)
		taskGroup.GET("/project/:projectId", taskController.ListByProject)
		taskGroup.PUT("/:id", taskController.Update)
		taskGroup.DELETE("/:id", taskController.Delete)
	}

	// Comment endpoints - protected by AuthMiddleware
	commentController := NewCommentController(deps.Comments)
	commentGroup := router.Group("/comments")
	commentGroup.Use(authGate)
	{
		commentGroup.POST("", commentController.Add)
		commentGroup.GET("/task/:taskId", commentController.ListByTask)
		commentGroup.DELETE("/:id", commentController.Delete)
	}
}
