package handlers

import (
	"errors"
	"net/http"

	"scoutpro-backend/internal/auth"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for scouting report operations
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ListReports handles GET /reports (optional playerId parameter)
// @Summary List scouting reports
// @Description Get all reports sorted by date descending, annotated with player summary and scout email, optionally filtered to one player
// @Tags reports
// @Accept json
// @Produce json
// @Param playerId query string false "Player ID (UUID) to filter reports"
// @Success 200 {array} service.ReportResponse "Successfully retrieved reports"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	var playerID *uuid.UUID
	if playerIDStr := c.Query("playerId"); playerIDStr != "" {
		id, err := uuid.Parse(playerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
			return
		}
		playerID = &id
	}

	reports, err := h.reportService.List(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// CreateReport handles POST /reports
// @Summary Create a new scouting report
// @Description Create a report for a player; the scout is always the authenticated caller
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.CreateReportRequest true "Report data"
// @Success 201 {object} service.ReportResponse "Successfully created report"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Create(actorID, &req)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// UpdateReport handles PUT /reports/:id
// @Summary Update a scouting report
// @Description Replace date, evaluations and notes; player and scout are immutable
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param report body service.UpdateReportRequest true "Report data"
// @Success 200 {object} service.ReportResponse "Successfully updated report"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	var req service.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Update(actorID, id, &req)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /reports/:id
// @Summary Delete a scouting report
// @Description Delete a report; a referenced spray chart file is removed best-effort
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted report"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	if err := h.reportService.Delete(actorID, id); err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}

func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
