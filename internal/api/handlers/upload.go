package handlers

import (
	"errors"
	"net/http"

	"scoutpro-backend/internal/auth"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/logger"
	"scoutpro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler handles spray chart image uploads
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// AttachSprayChart handles POST /upload/spray-chart/:reportId
// @Summary Attach a spray chart image to a report
// @Description Upload an image (multipart field "sprayChart", max 5 MB) and link it to the report
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param reportId path string true "Report ID (UUID)"
// @Param sprayChart formData file true "Spray chart image"
// @Success 200 {object} service.SprayChartResponse "Spray chart attached"
// @Failure 400 {object} ErrorResponse "Missing file or unsupported file type"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upload/spray-chart/{reportId} [post]
func (h *UploadHandler) AttachSprayChart(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reportID, err := uuid.Parse(c.Param("reportId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	// Bound the whole request body before the multipart form is parsed;
	// the margin covers the multipart framing around a maximum-size image.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxSprayChartSize+64<<10)

	header, err := c.FormFile("sprayChart")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apperrors.ErrFileTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "spray chart file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	resp, err := h.uploadService.AttachSprayChart(actorID, reportID, &service.SprayChartUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		respondUploadError(c, err)
		return
	}

	if email, ok := auth.GetUserEmail(c); ok {
		logger.New().WithFields(map[string]interface{}{
			"report_id": reportID,
			"user":      email,
			"url":       resp.SprayChartURL,
		}).Info("spray chart attached")
	}

	c.JSON(http.StatusOK, resp)
}

func respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
