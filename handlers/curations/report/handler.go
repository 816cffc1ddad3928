package report

import (
	"net/http"
	"slices"

	"modugarden-backend/db"
	"modugarden-backend/models"
	"modugarden-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Report a curation
// @Description Report a curation for inappropriate content
// @Tags curations
// @Accept json
// @Produce json
// @Param id path string true "Curation ID"
// @Param report body models.ReportCreate true "Report reason"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Curation not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/{id}/report [post]
func ReportCuration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.LogError(nil, "User not found in token in ReportCuration")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	curationID := c.Param("id")

	var curation models.Curation
	if err := db.DB.First(&curation, "id = ?", curationID).Error; err != nil {
		utils.LogError(err, "Curation not found in ReportCuration")
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	var reportCreate models.ReportCreate
	if err := c.ShouldBindJSON(&reportCreate); err != nil {
		utils.LogError(err, "Invalid input in ReportCuration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	validReasons := []models.ReportReason{
		models.SPAM, models.HARASSMENT, models.VIOLENCE,
		models.NUDITY, models.SCAM, models.MISINFORMATION,
		models.ILLEGAL_CONTENT,
	}
	if !slices.Contains(validReasons, reportCreate.Reason) {
		utils.LogError(nil, "Invalid report reason in ReportCuration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report reason"})
		return
	}

	var existingReport models.Report
	if err := db.DB.Where("curation_id = ? AND reported_by = ?", curationID, userID).First(&existingReport).Error; err == nil {
		utils.LogError(nil, "Already reported in ReportCuration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reported this curation"})
		return
	}

	report := models.Report{
		CurationID: curationID,
		ReportedBy: userID.(string),
		Reason:     reportCreate.Reason,
	}

	if err := db.DB.Create(&report).Error; err != nil {
		utils.LogError(err, "Error creating report in ReportCuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Report successfully created in ReportCuration")
	c.JSON(http.StatusCreated, report)
}

// @Summary Get all reports (Admin only)
// @Description Get all curation reports, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /curations/reports [get]
func GetAllReports(c *gin.Context) {
	var reports []models.Report

	if err := db.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		utils.LogError(err, "Error retrieving reports in GetAllReports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reports: " + err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		userID = "0"
	}
	utils.LogSuccessWithUser(userID, "Reports successfully retrieved in GetAllReports")
	c.JSON(http.StatusOK, reports)
}
