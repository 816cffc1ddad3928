package follows

import (
	"errors"
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Follow a user
// @Description Follow another user
// @Tags follows
// @Produce json
// @Param id path string true "User ID to follow"
// @Security BearerAuth
// @Success 201 {object} map[string]string "followerId, followingId"
// @Failure 400 {object} map[string]string "error: Cannot follow yourself"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 409 {object} map[string]string "error: Already following"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /follows/{id} [post]
func FollowUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	targetID := c.Param("id")
	if targetID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	var target models.User
	if err := db.DB.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var existing models.Follow
	err := db.DB.Where("follower_id = ? AND following_id = ?", userID, targetID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already following this user"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking follow: " + err.Error()})
		return
	}

	follow := models.Follow{
		FollowerID:  userID.(string),
		FollowingID: targetID,
	}
	if err := db.DB.Create(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating follow: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Follow successfully created in FollowUser")
	c.JSON(http.StatusCreated, gin.H{"followerId": follow.FollowerID, "followingId": follow.FollowingID})
}

// @Summary Unfollow a user
// @Description Stop following a user; a no-op when not following
// @Tags follows
// @Produce json
// @Param id path string true "User ID to unfollow"
// @Security BearerAuth
// @Success 200 {object} map[string]string "followerId, followingId"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /follows/{id} [delete]
func UnfollowUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	targetID := c.Param("id")

	var target models.User
	if err := db.DB.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var follow models.Follow
	err := db.DB.Where("follower_id = ? AND following_id = ?", userID, targetID).First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"followerId": userID, "followingId": targetID})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking follow: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing follow: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Follow successfully removed in UnfollowUser")
	c.JSON(http.StatusOK, gin.H{"followerId": userID, "followingId": targetID})
}

// @Summary Get my followings
// @Description List the users the authenticated user follows
// @Tags follows
// @Produce json
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.PagedResponse
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /follows/followings [get]
func GetFollowings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	listFollowGraph(c, userID.(string), "follower_id", "following_id")
}

// @Summary Get my followers
// @Description List the users following the authenticated user
// @Tags follows
// @Produce json
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.PagedResponse
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /follows/followers [get]
func GetFollowers(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	listFollowGraph(c, userID.(string), "following_id", "follower_id")
}

// listFollowGraph lists the users on the far side of the follow edges touching
// viewerID. whereColumn filters the edges, selectColumn names the far side.
func listFollowGraph(c *gin.Context, viewerID, whereColumn, selectColumn string) {
	p := utils.GetPagination(c)

	var ids []string
	err := p.Scope(db.DB.Model(&models.Follow{}).
		Where(whereColumn+" = ?", viewerID).
		Order("created_at DESC")).
		Pluck(selectColumn, &ids).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving follows: " + err.Error()})
		return
	}

	ids, hasNext := utils.Slice(ids, p)

	items := make([]models.FollowingInfo, 0, len(ids))
	for _, id := range ids {
		var user models.User
		if err := db.DB.Preload("Categories").First(&user, "id = ?", id).Error; err != nil {
			continue
		}

		names := make([]string, 0, len(user.Categories))
		for _, category := range user.Categories {
			names = append(names, category.Name)
		}

		var back models.Follow
		isFollow := db.DB.Where("follower_id = ? AND following_id = ?", viewerID, id).
			First(&back).Error == nil

		items = append(items, models.FollowingInfo{
			UserID:       user.ID,
			Nickname:     user.Nickname,
			ProfileImage: user.ProfileImage,
			Categories:   names,
			IsFollow:     isFollow,
		})
	}

	c.JSON(http.StatusOK, utils.PagedResponse{Content: items, Page: p.Page, Size: p.Size, HasNext: hasNext})
}
