package db

import (
	"os"

	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not defined")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Curation{},
		&models.LikeCuration{},
		&models.CurationStorage{},
		&models.Follow{},
		&models.Report{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")

	seedCategories()
}

// seedCategories inserts the fixed interest categories on first boot.
func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	names := []string{"gardening", "plant", "flower", "vegetable", "landscape"}
	for _, name := range names {
		if err := DB.Create(&models.Category{Name: name}).Error; err != nil {
			utils.LogError(err, "Error seeding category "+name)
		}
	}
	utils.LogSuccess("Initial categories created")
}
