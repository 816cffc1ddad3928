package users

import (
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/handlers/curations"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get my profile
// @Description Retrieve the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	getUserInfo(c, userID.(string))
}

// @Summary Get a user profile
// @Description Retrieve a user's profile with their interest categories
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserInfo
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [get]
func GetUserByID(c *gin.Context) {
	getUserInfo(c, c.Param("id"))
}

func getUserInfo(c *gin.Context, userID string) {
	var user models.User
	if err := db.DB.Preload("Categories").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	names := make([]string, 0, len(user.Categories))
	for _, category := range user.Categories {
		names = append(names, category.Name)
	}

	c.JSON(http.StatusOK, models.UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		Nickname:     user.Nickname,
		Birth:        user.Birth,
		Authority:    user.Authority,
		ProfileImage: user.ProfileImage,
		Categories:   names,
	})
}

// @Summary Delete my account
// @Description Delete the authenticated user with every curation, like, storage row and follow edge they own
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: User deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/me [delete]
func DeleteMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var owned []models.Curation
	if err := db.DB.Where("user_id = ?", userID).Find(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving curations: " + err.Error()})
		return
	}

	tx := db.DB.Begin()

	for i := range owned {
		if err := curations.DeleteCascade(tx, &owned[i]); err != nil {
			tx.Rollback()
			utils.LogErrorWithUser(userID, err, "Error deleting curation in DeleteMe")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting curations: " + err.Error()})
			return
		}
	}

	// Likes the user left on other users' curations: the counters of those
	// curations must come down with the rows
	var likedIDs []string
	if err := tx.Model(&models.LikeCuration{}).
		Where("user_id = ?", userID).
		Pluck("curation_id", &likedIDs).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving likes: " + err.Error()})
		return
	}
	if len(likedIDs) > 0 {
		if err := tx.Model(&models.Curation{}).Where("id IN ?", likedIDs).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating like counts: " + err.Error()})
			return
		}
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.LikeCuration{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting likes: " + err.Error()})
		return
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CurationStorage{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting saved curations: " + err.Error()})
		return
	}

	if err := tx.Where("follower_id = ? OR following_id = ?", userID, userID).Delete(&models.Follow{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting follows: " + err.Error()})
		return
	}

	if err := tx.Exec("DELETE FROM user_categories WHERE user_id = ?", userID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing user categories: " + err.Error()})
		return
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user: " + err.Error()})
		return
	}

	tx.Commit()

	for _, curation := range owned {
		if err := utils.DeleteImage(curation.PreviewImage); err != nil {
			utils.LogErrorWithUser(userID, err, "Error deleting preview image in DeleteMe")
		}
	}

	utils.LogSuccessWithUser(userID, "User successfully deleted in DeleteMe")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
