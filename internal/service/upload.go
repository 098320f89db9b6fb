package service

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"scoutpro-backend/internal/auth"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/logger"
	"scoutpro-backend/internal/repository"
	"scoutpro-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxSprayChartSize is the upload size ceiling, enforced before storage
const MaxSprayChartSize = 5 << 20 // 5 MB

// SprayChartUpload carries one incoming image upload
type SprayChartUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SprayChartResponse represents the result of attaching a spray chart
type SprayChartResponse struct {
	ReportID      uuid.UUID `json:"report_id"`
	SprayChartURL string    `json:"spray_chart_url"`
	UpdatedAt     string    `json:"updated_at"`
}

// UploadService attaches spray chart images to reports. The stored file and
// the owning report's reference are kept consistent: a failure after storage
// always removes the file again.
type UploadService struct {
	reports repository.ReportRepositoryInterface
	store   storage.FileStore
	policy  auth.Policy
}

// NewUploadService creates a new upload service
func NewUploadService(reports repository.ReportRepositoryInterface, store storage.FileStore, policy auth.Policy) *UploadService {
	return &UploadService{
		reports: reports,
		store:   store,
		policy:  policy,
	}
}

// AttachSprayChart validates, stores and links an image to a report. The
// image is written under a generated unique name preserving the original
// extension; if the report lookup or the link update fails the file is
// removed so no orphan is left behind. A replaced chart's previous file is
// removed best-effort.
func (s *UploadService) AttachSprayChart(actorID, reportID uuid.UUID, upload *SprayChartUpload) (*SprayChartResponse, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, apperrors.ErrUnsupportedFileType
	}
	if upload.Size > MaxSprayChartSize {
		return nil, apperrors.ErrFileTooLarge
	}

	if !s.policy.Allow(actorID, auth.ActionUpdate, auth.Resource{Kind: "report"}) {
		return nil, apperrors.NewAuthorizationError("not allowed to attach spray charts")
	}

	name := fmt.Sprintf("spraychart-%s%s", uuid.New(), strings.ToLower(filepath.Ext(upload.FileName)))
	if err := s.store.Save(name, io.LimitReader(upload.Reader, MaxSprayChartSize)); err != nil {
		return nil, apperrors.NewStorageError("save", err)
	}

	report, err := s.reports.GetByID(reportID)
	if err != nil {
		s.discard(name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	previous := report.SprayChartURL
	report.SprayChartURL = s.store.URL(name)
	if err := s.reports.Update(report); err != nil {
		s.discard(name)
		return nil, fmt.Errorf("failed to link spray chart: %w", err)
	}

	if previous != "" {
		if err := s.store.Remove(storage.FileName(previous)); err != nil {
			logger.New().WithField("file", previous).Warnf("failed to remove replaced spray chart: %v", err)
		}
	}

	return &SprayChartResponse{
		ReportID:      report.ID,
		SprayChartURL: report.SprayChartURL,
		UpdatedAt:     report.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// discard removes a freshly stored file after a failed attach
func (s *UploadService) discard(name string) {
	if err := s.store.Remove(name); err != nil {
		logger.New().WithField("file", name).Warnf("failed to discard stored upload: %v", err)
	}
}
