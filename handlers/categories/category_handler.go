package categories

import (
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new category
// @Description Create a new interest category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryCreate true "Category information"
// @Security BearerAuth
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var categoryCreate models.CategoryCreate
	if err := c.ShouldBindJSON(&categoryCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var existingCategory models.Category
	if err := db.DB.First(&existingCategory, "name = ?", categoryCreate.Name).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Category already exists",
		})
		return
	}

	category := models.Category{
		Name: categoryCreate.Name,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating category: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary Get all categories
// @Description Retrieve all interest categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	var categories []models.Category

	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Update a category
// @Description Update a category with the provided information
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryCreate true "Updated category information"
// @Security BearerAuth
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Category not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := db.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var categoryUpdate models.CategoryCreate
	if err := c.ShouldBindJSON(&categoryUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	category.Name = categoryUpdate.Name

	if err := db.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary Delete a category
// @Description Delete a category that no curation references
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Category deleted successfully"
// @Failure 400 {object} map[string]string "error: Category still referenced"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Category not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := db.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	// Curations keep their category for their whole life
	var count int64
	if err := db.DB.Model(&models.Curation{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking curations: " + err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is still referenced by curations"})
		return
	}

	if err := db.DB.Exec("DELETE FROM user_categories WHERE category_id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing category from users: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
