package service_test

import (
	"strings"
	"testing"
	"time"

	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/mocks"
	"scoutpro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UploadServiceTestSuite defines the test suite for UploadService
type UploadServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockReportRepositoryInterface
	mockStore     *mocks.MockFileStore
	uploadService *service.UploadService
}

// SetupTest sets up the test suite
func (suite *UploadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockFileStore(suite.ctrl)

	suite.uploadService = service.NewUploadService(
		suite.mockRepo,
		suite.mockStore,
		auth.NewAuthenticatedPolicy(),
	)
}

// TearDownTest cleans up after each test
func (suite *UploadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func chartUpload() *service.SprayChartUpload {
	return &service.SprayChartUpload{
		FileName:    "chart.PNG",
		ContentType: "image/png",
		Size:        1024,
		Reader:      strings.NewReader("not a real png"),
	}
}

func (suite *UploadServiceTestSuite) TestAttachStoresAndLinks() {
	reportID := uuid.New()
	report := &models.Report{
		BaseModel: models.BaseModel{ID: reportID, CreatedAt: time.Now()},
		UpdatedAt: time.Now(),
	}

	var savedName string
	suite.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(name string, _ interface{}) error {
		savedName = name
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(reportID).Return(report, nil)
	suite.mockStore.EXPECT().URL(gomock.Any()).DoAndReturn(func(name string) string {
		return "/uploads/" + name
	})
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(r *models.Report) error {
		suite.Equal("/uploads/"+savedName, r.SprayChartURL)
		return nil
	})

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), reportID, chartUpload())

	suite.NoError(err)
	suite.Equal(reportID, result.ReportID)
	// generated name keeps the lowercased original extension
	suite.True(strings.HasPrefix(savedName, "spraychart-"))
	suite.True(strings.HasSuffix(savedName, ".png"))
}

func (suite *UploadServiceTestSuite) TestAttachRejectsNonImage() {
	upload := chartUpload()
	upload.ContentType = "application/pdf"

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), uuid.New(), upload)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)
}

func (suite *UploadServiceTestSuite) TestAttachRejectsOversizedFile() {
	upload := chartUpload()
	upload.Size = service.MaxSprayChartSize + 1

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), uuid.New(), upload)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrFileTooLarge)
}

func (suite *UploadServiceTestSuite) TestAttachDiscardsFileWhenReportMissing() {
	reportID := uuid.New()

	var savedName string
	suite.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(name string, _ interface{}) error {
		savedName = name
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(reportID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockStore.EXPECT().Remove(gomock.Any()).DoAndReturn(func(name string) error {
		suite.Equal(savedName, name)
		return nil
	})

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), reportID, chartUpload())

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (suite *UploadServiceTestSuite) TestAttachDiscardsFileWhenLinkFails() {
	reportID := uuid.New()
	report := &models.Report{BaseModel: models.BaseModel{ID: reportID}}

	suite.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().GetByID(reportID).Return(report, nil)
	suite.mockStore.EXPECT().URL(gomock.Any()).Return("/uploads/whatever.png")
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(assert.AnError)
	suite.mockStore.EXPECT().Remove(gomock.Any()).Return(nil)

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), reportID, chartUpload())

	suite.Nil(result)
	suite.Error(err)
}

func (suite *UploadServiceTestSuite) TestAttachReplacesPreviousChart() {
	reportID := uuid.New()
	report := &models.Report{
		BaseModel:     models.BaseModel{ID: reportID},
		SprayChartURL: "/uploads/spraychart-old.png",
	}

	suite.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().GetByID(reportID).Return(report, nil)
	suite.mockStore.EXPECT().URL(gomock.Any()).Return("/uploads/spraychart-new.png")
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockStore.EXPECT().Remove("spraychart-old.png").Return(nil)

	result, err := suite.uploadService.AttachSprayChart(uuid.New(), reportID, chartUpload())

	suite.NoError(err)
	suite.Equal("/uploads/spraychart-new.png", result.SprayChartURL)
}

// TestUploadServiceTestSuite runs the test suite
func TestUploadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UploadServiceTestSuite))
}
