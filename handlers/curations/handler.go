package curations

import (
	"net/http"

	"modugarden-backend/db"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a new curation
// @Description Create a curation with a title, link, category and preview picture
// @Tags curations
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Curation title"
// @Param link formData string true "Curation link"
// @Param category formData string true "Category name"
// @Param picture formData file true "Preview picture"
// @Security BearerAuth
// @Success 201 {object} map[string]string "id: new curation ID"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Category not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations [post]
func CreateCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	title := c.Request.FormValue("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	link := c.Request.FormValue("link")

	categoryName := c.Request.FormValue("category")
	if categoryName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	var category models.Category
	if err := db.DB.First(&category, "name = ?", categoryName).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	file, err := c.FormFile("picture")
	if err != nil || file == nil || file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}

	imageURL, err := utils.UploadImage(file, "curation_pictures", "curation")
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error uploading picture in CreateCuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
		return
	}

	curation := models.Curation{
		Title:        title,
		Link:         link,
		PreviewImage: imageURL,
		LikeCount:    0,
		UserID:       userID.(string),
		CategoryID:   category.ID,
	}

	if err := db.DB.Create(&curation).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating curation in CreateCuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating curation: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Curation successfully created in CreateCuration")
	c.JSON(http.StatusCreated, gin.H{"id": curation.ID})
}

// @Summary Get a curation by ID
// @Description Retrieve a curation with the viewer-relative like/save flags
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} models.CurationDetail
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Router /curations/{id} [get]
func GetCurationByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var curation models.Curation
	curationID := c.Param("id")

	if err := db.DB.Preload("User").Preload("Category").First(&curation, "id = ?", curationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	c.JSON(http.StatusOK, models.CurationDetail{
		Curation: curation,
		IsLiked:  pairExists(&models.LikeCuration{}, userID.(string), curation.ID),
		IsSaved:  pairExists(&models.CurationStorage{}, userID.(string), curation.ID),
	})
}

// @Summary Get the like count of a curation
// @Description Retrieve the current like count of a curation
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Success 200 {object} map[string]interface{} "curationId, likeCount"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Router /curations/{id}/likes [get]
func GetCurationLikes(c *gin.Context) {
	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"curationId": curation.ID, "likeCount": curation.LikeCount})
}

// @Summary Get the curations of a user
// @Description Retrieve the curations of a user, newest first
// @Tags curations
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} utils.PagedResponse
// @Failure 404 {object} map[string]string "error: No curations found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/users/{id} [get]
func GetUserCurations(c *gin.Context) {
	listCurationsByAuthor(c, c.Param("id"))
}

// @Summary Get my curations
// @Description Retrieve the authenticated user's curations, newest first
// @Tags curations
// @Produce json
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.PagedResponse
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: No curations found"
// @Router /curations/me [get]
func GetMyCurations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	listCurationsByAuthor(c, userID.(string))
}

func listCurationsByAuthor(c *gin.Context, authorID string) {
	p := utils.GetPagination(c)

	var list []models.Curation
	err := p.Scope(db.DB.Preload("Category").
		Where("user_id = ?", authorID).
		Order("created_at DESC")).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving curations: " + err.Error()})
		return
	}

	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No curations found"})
		return
	}

	content, hasNext := utils.Slice(list, p)
	c.JSON(http.StatusOK, utils.PagedResponse{Content: content, Page: p.Page, Size: p.Size, HasNext: hasNext})
}

// @Summary Get my saved curations
// @Description Retrieve the curations the authenticated user has stored, newest first
// @Tags curations
// @Produce json
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.PagedResponse
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: No curations found"
// @Router /curations/me/storage [get]
func GetMyStoredCurations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	p := utils.GetPagination(c)

	var list []models.Curation
	err := p.Scope(db.DB.Preload("Category").
		Joins("JOIN curation_storages ON curation_storages.curation_id = curations.id").
		Where("curation_storages.user_id = ?", userID).
		Order("curations.created_at DESC")).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving stored curations: " + err.Error()})
		return
	}

	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No curations found"})
		return
	}

	content, hasNext := utils.Slice(list, p)
	c.JSON(http.StatusOK, utils.PagedResponse{Content: content, Page: p.Page, Size: p.Size, HasNext: hasNext})
}

// @Summary Search curations by title
// @Description Substring search on curation titles, newest first
// @Tags curations
// @Produce json
// @Param title query string true "Title substring"
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} utils.PagedResponse
// @Failure 404 {object} map[string]string "error: No curations found"
// @Router /curations/search [get]
func SearchCurations(c *gin.Context) {
	title := c.Query("title")
	p := utils.GetPagination(c)

	var list []models.Curation
	err := p.Scope(db.DB.Preload("User").Preload("Category").
		Where("title LIKE ?", "%"+title+"%").
		Order("created_at DESC")).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching curations: " + err.Error()})
		return
	}

	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No curations found"})
		return
	}

	content, hasNext := utils.Slice(list, p)
	c.JSON(http.StatusOK, utils.PagedResponse{Content: content, Page: p.Page, Size: p.Size, HasNext: hasNext})
}

// @Summary Get the curation feed of a category
// @Description Retrieve the curations of a category, newest first
// @Tags curations
// @Produce json
// @Param category query string true "Category name"
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Success 200 {object} utils.PagedResponse
// @Failure 404 {object} map[string]string "error: Category or curations not found"
// @Router /curations/feed [get]
func GetCategoryFeed(c *gin.Context) {
	var category models.Category
	if err := db.DB.First(&category, "name = ?", c.Query("category")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	p := utils.GetPagination(c)

	var list []models.Curation
	err := p.Scope(db.DB.Preload("User").Preload("Category").
		Where("category_id = ?", category.ID).
		Order("created_at DESC")).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving feed: " + err.Error()})
		return
	}

	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No curations found"})
		return
	}

	content, hasNext := utils.Slice(list, p)
	c.JSON(http.StatusOK, utils.PagedResponse{Content: content, Page: p.Page, Size: p.Size, HasNext: hasNext})
}

// @Summary Get the follow feed
// @Description Retrieve the curations authored by the users the viewer follows, plus the viewer
// @Tags curations
// @Produce json
// @Param page query int false "Page number (zero-based)"
// @Param size query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} utils.PagedResponse
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/feed/follow [get]
func GetFollowFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var authorIDs []string
	err := db.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &authorIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving followings: " + err.Error()})
		return
	}
	authorIDs = append(authorIDs, userID.(string))

	p := utils.GetPagination(c)

	var list []models.Curation
	err = p.Scope(db.DB.Preload("User").Preload("Category").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC")).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving feed: " + err.Error()})
		return
	}

	// An empty follow feed is a valid empty page, not an error
	content, hasNext := utils.Slice(list, p)
	items := make([]models.CurationDetail, 0, len(content))
	for _, curation := range content {
		items = append(items, models.CurationDetail{
			Curation: curation,
			IsLiked:  pairExists(&models.LikeCuration{}, userID.(string), curation.ID),
			IsSaved:  pairExists(&models.CurationStorage{}, userID.(string), curation.ID),
		})
	}

	c.JSON(http.StatusOK, utils.PagedResponse{Content: items, Page: p.Page, Size: p.Size, HasNext: hasNext})
}

// @Summary Delete a curation
// @Description Delete a curation, its preview image and every like, storage and report row attached to it
// @Tags curations
// @Produce json
// @Param id path string true "Curation ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "id: deleted curation ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not authorized to delete this curation"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id} [delete]
func DeleteCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	// Ownership is checked before any destructive call
	if curation.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this curation"})
		return
	}

	tx := db.DB.Begin()
	if err := DeleteCascade(tx, &curation); err != nil {
		tx.Rollback()
		utils.LogErrorWithUser(userID, err, "Error deleting curation in DeleteCuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting curation: " + err.Error()})
		return
	}
	tx.Commit()

	if err := utils.DeleteImage(curation.PreviewImage); err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting preview image in DeleteCuration")
	}

	utils.LogSuccessWithUser(userID, "Curation successfully deleted in DeleteCuration")
	c.JSON(http.StatusOK, gin.H{"id": curation.ID})
}

// DeleteCascade removes the curation row together with every like, storage and
// report row referencing it, within the given transaction.
func DeleteCascade(tx *gorm.DB, curation *models.Curation) error {
	if err := tx.Where("curation_id = ?", curation.ID).Delete(&models.CurationStorage{}).Error; err != nil {
		return err
	}
	if err := tx.Where("curation_id = ?", curation.ID).Delete(&models.LikeCuration{}).Error; err != nil {
		return err
	}
	if err := tx.Where("curation_id = ?", curation.ID).Delete(&models.Report{}).Error; err != nil {
		return err
	}
	return tx.Delete(curation).Error
}

func pairExists(model interface{}, userID, curationID string) bool {
	err := db.DB.Where("user_id = ? AND curation_id = ?", userID, curationID).
		First(model).Error
	return err == nil
}
