package http

import (
	"github.com/gin-gonic/gin"

	"github.com/agenciathoth/checklist/internal/adapter/http/handlers"
	"github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Customer *handlers.CustomerHandler
	Task     *handlers.TaskHandler
	Media    *handlers.MediaHandler
	Comment  *handlers.CommentHandler
	User     *handlers.UserHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService, metrics *middleware.Metrics) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.Authenticate(authService), metrics.Middleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/login", h.Auth.Login)

		// Public portal surface, reachable without a session. Customers
		// check off their own tasks and comment anonymously here.
		api.GET("/customers/slug/:slug", h.Customer.GetCustomerPage)
		api.GET("/customers/slug/:slug/calendar", h.Customer.GetCalendar)
		api.GET("/tasks/:id", h.Task.GetTask)
		api.PATCH("/tasks/:id/check", h.Task.ToggleCheck)
		api.GET("/tasks/:id/comments", h.Comment.ListThreads)
		api.POST("/tasks/:id/comments", h.Comment.CreateComment)
		api.PUT("/comments/:id", h.Comment.UpdateComment)
		api.DELETE("/comments/:id", h.Comment.DeleteComment)
		api.PATCH("/comments/:id/like", h.Comment.ToggleLike)

		authed := api.Group("")
		authed.Use(middleware.RequireSession())
		{
			authed.GET("/customers", h.Customer.ListCustomers)
			authed.POST("/customers", h.Customer.CreateCustomer)
			authed.PUT("/customers/:id", h.Customer.UpdateCustomer)

			authed.POST("/tasks", h.Task.CreateTask)
			authed.PUT("/tasks/:id", h.Task.UpdateTask)
			authed.PATCH("/tasks/:id/archive", h.Task.ToggleArchive)
			authed.DELETE("/tasks/:id", h.Task.DeleteTask)
			authed.PATCH("/tasks/:id/media/reorder", h.Media.ReorderTaskMedia)

			authed.POST("/uploads/presign", h.Media.PresignUpload)
			authed.POST("/uploads", h.Media.Upload)
			authed.POST("/media", h.Media.RegisterMedia)
			authed.PUT("/media/:id/order", h.Media.SetOrder)
			authed.DELETE("/media/:id", h.Media.DeleteMedia)
		}

		admin := api.Group("")
		admin.Use(middleware.RequireSession(), middleware.RequireAdmin())
		{
			admin.PATCH("/customers/:id/archive", h.Customer.ToggleArchive)
			admin.DELETE("/customers/:id", h.Customer.DeleteCustomer)

			admin.GET("/users", h.User.ListUsers)
			admin.POST("/users", h.User.CreateUser)
			admin.PUT("/users/:id", h.User.UpdateUser)
			admin.PATCH("/users/:id/archive", h.User.ToggleArchive)
			admin.DELETE("/users/:id", h.User.DeleteUser)
		}
	}
}
