package routes

import (
	"modugarden-backend/handlers/curations"
	"modugarden-backend/handlers/curations/likes"
	"modugarden-backend/handlers/curations/report"
	"modugarden-backend/handlers/curations/storage"
	"modugarden-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CurationsRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/curations/search", curations.SearchCurations)
	r.GET("/curations/feed", curations.GetCategoryFeed)
	r.GET("/curations/users/:id", curations.GetUserCurations)
	r.GET("/curations/:id/likes", curations.GetCurationLikes)

	// Protected routes
	curationsRoutes := r.Group("/curations")
	curationsRoutes.Use(middleware.JWTAuth())
	{
		curationsRoutes.POST("", curations.CreateCuration)
		curationsRoutes.GET("/me", curations.GetMyCurations)
		curationsRoutes.GET("/me/storage", curations.GetMyStoredCurations)
		curationsRoutes.GET("/feed/follow", curations.GetFollowFeed)
		curationsRoutes.GET("/:id", curations.GetCurationByID)
		curationsRoutes.DELETE("/:id", curations.DeleteCuration)

		// Interactions
		curationsRoutes.POST("/:id/like", likes.LikeCuration)
		curationsRoutes.DELETE("/:id/like", likes.UnlikeCuration)
		curationsRoutes.GET("/:id/like/me", likes.GetMyLikeStatus)
		curationsRoutes.POST("/:id/storage", storage.SaveCuration)
		curationsRoutes.DELETE("/:id/storage", storage.UnsaveCuration)
		curationsRoutes.GET("/:id/storage/me", storage.GetMyStorageStatus)
		curationsRoutes.POST("/:id/report", report.ReportCuration)
	}

	// Admin routes
	adminRoutes := r.Group("/curations")
	adminRoutes.Use(middleware.JWTAuth())
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("/reports", report.GetAllReports)
	}
}
