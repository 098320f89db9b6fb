package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"scoutpro-backend/internal/api/handlers"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/mocks"
	"scoutpro-backend/internal/service"
	"scoutpro-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UploadHandlerTestSuite defines the test suite for UploadHandler
type UploadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUploadServiceInterface
	handler     *handlers.UploadHandler
	httpSuite   *testutils.HTTPTestSuite
	actorID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UploadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUploadServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUploadHandler(suite.mockService)
	suite.actorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID.String())
	})
	suite.httpSuite.Router.POST("/upload/spray-chart/:reportId", suite.handler.AttachSprayChart)
}

// TearDownTest cleans up after each test
func (suite *UploadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// multipartChart builds a multipart body with one sprayChart file part
func (suite *UploadHandlerTestSuite) multipartChart(fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	return body, writer.FormDataContentType()
}

func (suite *UploadHandlerTestSuite) postChart(url string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, err := http.NewRequest("POST", url, body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChart() {
	reportID := uuid.New()
	body, contentType := suite.multipartChart("sprayChart", "chart.png", "image/png", []byte("png bytes"))

	expected := &service.SprayChartResponse{
		ReportID:      reportID,
		SprayChartURL: "/uploads/spraychart-abc.png",
	}
	suite.mockService.EXPECT().
		AttachSprayChart(suite.actorID, reportID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, upload *service.SprayChartUpload) (*service.SprayChartResponse, error) {
			suite.Equal("chart.png", upload.FileName)
			suite.Equal("image/png", upload.ContentType)
			suite.Equal(int64(len("png bytes")), upload.Size)
			return expected, nil
		})

	recorder := suite.postChart("/upload/spray-chart/"+reportID.String(), body, contentType)

	var result service.SprayChartResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &result)
	suite.Equal("/uploads/spraychart-abc.png", result.SprayChartURL)
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChartInvalidReportID() {
	body, contentType := suite.multipartChart("sprayChart", "chart.png", "image/png", []byte("png bytes"))

	recorder := suite.postChart("/upload/spray-chart/not-a-uuid", body, contentType)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid report ID")
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChartMissingFilePart() {
	body, contentType := suite.multipartChart("wrongField", "chart.png", "image/png", []byte("png bytes"))

	recorder := suite.postChart("/upload/spray-chart/"+uuid.NewString(), body, contentType)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "spray chart file is required")
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChartReportNotFound() {
	reportID := uuid.New()
	body, contentType := suite.multipartChart("sprayChart", "chart.png", "image/png", []byte("png bytes"))

	suite.mockService.EXPECT().
		AttachSprayChart(suite.actorID, reportID, gomock.Any()).
		Return(nil, apperrors.ErrReportNotFound)

	recorder := suite.postChart("/upload/spray-chart/"+reportID.String(), body, contentType)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChartUnsupportedType() {
	reportID := uuid.New()
	body, contentType := suite.multipartChart("sprayChart", "chart.pdf", "application/pdf", []byte("%PDF-"))

	suite.mockService.EXPECT().
		AttachSprayChart(suite.actorID, reportID, gomock.Any()).
		Return(nil, apperrors.ErrUnsupportedFileType)

	recorder := suite.postChart("/upload/spray-chart/"+reportID.String(), body, contentType)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *UploadHandlerTestSuite) TestAttachSprayChartTooLarge() {
	reportID := uuid.New()
	body, contentType := suite.multipartChart("sprayChart", "chart.png", "image/png", []byte("png bytes"))

	suite.mockService.EXPECT().
		AttachSprayChart(suite.actorID, reportID, gomock.Any()).
		Return(nil, apperrors.ErrFileTooLarge)

	recorder := suite.postChart("/upload/spray-chart/"+reportID.String(), body, contentType)

	suite.Equal(http.StatusRequestEntityTooLarge, recorder.Code)
}

// TestUploadHandlerTestSuite runs the test suite
func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
