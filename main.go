package main

import (
	"log"
	"os"

	"modugarden-backend/db"
	_ "modugarden-backend/docs"
	"modugarden-backend/routes"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Modugarden Backend API
// @version 1.0
// @description API for the Modugarden curation platform
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work correctly.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
