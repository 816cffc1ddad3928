package routes

import (
	"modugarden-backend/handlers/users"
	"modugarden-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	// Public profile
	r.GET("/users/:id", users.GetUserByID)

	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/me", users.GetMe)
		usersRoutes.DELETE("/me", users.DeleteMe)
	}
}
