package service_test

import (
	"testing"
	"time"

	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/mocks"
	"scoutpro-backend/internal/repository"
	"scoutpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockReportRepositoryInterface
	mockStore     *mocks.MockFileStore
	reportService *service.ReportService
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockFileStore(suite.ctrl)

	suite.reportService = service.NewReportService(
		suite.mockRepo,
		suite.mockStore,
		auth.NewAuthenticatedPolicy(),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) TestCreateSetsScoutFromCaller() {
	actorID := uuid.New()
	req := &service.CreateReportRequest{
		PlayerID:    uuid.New(),
		Date:        "2024-05-18",
		Evaluations: map[string]string{"hitting": "4"},
		Notes:       "Quick hands",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *models.Report) error {
		suite.Equal(actorID, report.ScoutID)
		suite.JSONEq(`{"hitting":"4"}`, string(report.Evaluations))
		report.ID = uuid.New()
		return nil
	})

	result, err := suite.reportService.Create(actorID, req)

	suite.NoError(err)
	suite.Equal(actorID, result.ScoutID)
	suite.Equal("2024-05-18", result.Date)
	suite.Equal(map[string]string{"hitting": "4"}, result.Evaluations)
}

func (suite *ReportServiceTestSuite) TestCreateRejectsBadDate() {
	req := &service.CreateReportRequest{
		PlayerID: uuid.New(),
		Date:     "05/18/2024",
	}

	result, err := suite.reportService.Create(uuid.New(), req)

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestCreateWithNilEvaluationsStoresEmptyObject() {
	req := &service.CreateReportRequest{
		PlayerID: uuid.New(),
		Date:     "2024-05-18",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *models.Report) error {
		suite.JSONEq(`{}`, string(report.Evaluations))
		return nil
	})

	result, err := suite.reportService.Create(uuid.New(), req)

	suite.NoError(err)
	suite.NotNil(result.Evaluations)
	suite.Empty(result.Evaluations)
}

func (suite *ReportServiceTestSuite) TestListOrderAndAnnotations() {
	playerID := uuid.New()
	rows := []repository.ReportRow{
		{
			ID:             uuid.New(),
			PlayerID:       playerID,
			ScoutID:        uuid.New(),
			Date:           "2024-05-19",
			Evaluations:    []byte(`{"speed":"5"}`),
			PlayerName:     "Mike Johnson",
			PlayerPosition: "SS",
			PlayerJersey:   "12",
			ScoutEmail:     "scout@metroleague.com",
		},
		{
			ID:       uuid.New(),
			PlayerID: playerID,
			ScoutID:  uuid.New(),
			Date:     "2024-05-18",
		},
	}
	suite.mockRepo.EXPECT().GetAllAnnotated(&playerID).Return(rows, nil)

	result, err := suite.reportService.List(&playerID)

	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal("2024-05-19", result[0].Date)
	suite.Equal("scout@metroleague.com", result[0].ScoutEmail)
	suite.Require().NotNil(result[0].Player)
	suite.Equal("Mike Johnson", result[0].Player.Name)
	suite.Nil(result[1].Player)
	suite.Equal(map[string]string{"speed": "5"}, result[0].Evaluations)
}

func (suite *ReportServiceTestSuite) TestUpdateKeepsPlayerAndScout() {
	id := uuid.New()
	playerID := uuid.New()
	scoutID := uuid.New()
	existing := &models.Report{
		BaseModel:   models.BaseModel{ID: id, CreatedAt: time.Now()},
		PlayerID:    playerID,
		ScoutID:     scoutID,
		Date:        "2024-05-18",
		Evaluations: []byte(`{"hitting":"3"}`),
	}
	req := &service.UpdateReportRequest{
		Date:        "2024-05-20",
		Evaluations: map[string]string{"hitting": "4"},
		Notes:       "Improved bat speed",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(report *models.Report) error {
		suite.Equal(playerID, report.PlayerID)
		suite.Equal(scoutID, report.ScoutID)
		suite.Equal("2024-05-20", report.Date)
		return nil
	})

	result, err := suite.reportService.Update(uuid.New(), id, req)

	suite.NoError(err)
	suite.Equal(playerID, result.PlayerID)
	suite.Equal(scoutID, result.ScoutID)
	suite.Equal("Improved bat speed", result.Notes)
}

func (suite *ReportServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	req := &service.UpdateReportRequest{Date: "2024-05-20"}
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.reportService.Update(uuid.New(), id, req)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (suite *ReportServiceTestSuite) TestDeleteRemovesSprayChart() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Report{
		BaseModel:     models.BaseModel{ID: id},
		SprayChartURL: "/uploads/spraychart-abc.png",
	}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)
	suite.mockStore.EXPECT().Remove("spraychart-abc.png").Return(nil)

	err := suite.reportService.Delete(uuid.New(), id)

	suite.NoError(err)
}

func (suite *ReportServiceTestSuite) TestDeleteWithoutChartSkipsStore() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Report{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	err := suite.reportService.Delete(uuid.New(), id)

	suite.NoError(err)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
