package routes

import (
	"modugarden-backend/handlers/follows"
	"modugarden-backend/middleware"

	"github.com/gin-gonic/gin"
)

func FollowsRoutes(r *gin.Engine) {
	followsRoutes := r.Group("/follows")
	followsRoutes.Use(middleware.JWTAuth())
	{
		followsRoutes.GET("/followings", follows.GetFollowings)
		followsRoutes.GET("/followers", follows.GetFollowers)
		followsRoutes.POST("/:id", follows.FollowUser)
		followsRoutes.DELETE("/:id", follows.UnfollowUser)
	}
}
