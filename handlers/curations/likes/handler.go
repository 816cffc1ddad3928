package likes

import (
	"errors"
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Like a curation
// @Description Add a like on a curation; liking twice is a no-op
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "curationId, likeCount"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id}/like [post]
func LikeCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var like models.LikeCuration
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&like).Error
	if err == nil {
		// Already liked, the counter stays where it is
		c.JSON(http.StatusOK, gin.H{"curationId": curation.ID, "likeCount": curation.LikeCount})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like: " + err.Error()})
		return
	}

	// The join row and the counter move together or not at all
	tx := db.DB.Begin()
	like = models.LikeCuration{
		UserID:     userID.(string),
		CurationID: curationID,
	}
	if err := tx.Create(&like).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
		return
	}
	if err := tx.Model(&models.Curation{}).Where("id = ?", curationID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating like count: " + err.Error()})
		return
	}
	tx.Commit()

	utils.LogSuccessWithUser(userID, "Like successfully added in LikeCuration")
	c.JSON(http.StatusOK, gin.H{"curationId": curation.ID, "likeCount": curation.LikeCount + 1})
}

// @Summary Unlike a curation
// @Description Remove a like from a curation; unliking without a like is a no-op
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "curationId, likeCount"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation or user not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id}/like [delete]
func UnlikeCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var like models.LikeCuration
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"curationId": curation.ID, "likeCount": curation.LikeCount})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking like: " + err.Error()})
		return
	}

	tx := db.DB.Begin()
	if err := tx.Delete(&like).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing like: " + err.Error()})
		return
	}
	if err := tx.Model(&models.Curation{}).Where("id = ?", curationID).
		UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating like count: " + err.Error()})
		return
	}
	tx.Commit()

	utils.LogSuccessWithUser(userID, "Like successfully removed in UnlikeCuration")
	c.JSON(http.StatusOK, gin.H{"curationId": curation.ID, "likeCount": curation.LikeCount - 1})
}

// @Summary Get my like status on a curation
// @Description Tell whether the authenticated user likes the curation
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "userId, curationId, isLiked"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Router /curations/{id}/like/me [get]
func GetMyLikeStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var like models.LikeCuration
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).First(&like).Error

	c.JSON(http.StatusOK, gin.H{
		"userId":     userID,
		"curationId": curation.ID,
		"isLiked":    err == nil,
	})
}
