package routes_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"scoutpro-backend/internal/api/routes"
	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/config"
	"scoutpro-backend/internal/service"
	"scoutpro-backend/internal/storage"
	"scoutpro-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite exercises the wired router end to end against an
// in-memory database and a temp-dir file store.
type RoutesTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
	uploadDir string
	token     string
}

// SetupTest sets up the test suite
func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := testutils.SetupTestDB(suite.T())
	suite.uploadDir = suite.T().TempDir()
	store, err := storage.NewLocalStore(suite.uploadDir, "/uploads")
	suite.Require().NoError(err)

	cfg := &config.Config{
		Environment:      "test",
		JWTSecret:        "test-secret",
		RegistrationCode: "COACH2024",
		RateLimitEnabled: false,
	}

	suite.httpSuite = &testutils.HTTPTestSuite{Router: routes.SetupRoutes(db, store, cfg)}
	suite.token = ""
}

func (suite *RoutesTestSuite) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + suite.token}
}

func (suite *RoutesTestSuite) register(email string) auth.AuthResponse {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]string{
		"email":            email,
		"password":         "hawks2024",
		"registrationCode": "COACH2024",
	})
	var resp auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.token = resp.Token
	return resp
}

func (suite *RoutesTestSuite) createTeam(name, league string) service.TeamResponse {
	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/teams", map[string]string{
		"name": name, "league": league,
	}, suite.authHeaders())
	var team service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &team)
	return team
}

func (suite *RoutesTestSuite) createPlayer(name, position, jersey string, teamID uuid.UUID) service.PlayerResponse {
	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/players", map[string]interface{}{
		"name": name, "position": position, "jerseyNumber": jersey, "teamId": teamID,
	}, suite.authHeaders())
	var player service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &player)
	return player
}

func (suite *RoutesTestSuite) createReport(playerID uuid.UUID, date string) service.ReportResponse {
	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/reports", map[string]interface{}{
		"playerId":    playerID,
		"date":        date,
		"evaluations": map[string]string{"hitting": "4", "fielding": "5"},
		"notes":       "Quick hands through the zone",
	}, suite.authHeaders())
	var report service.ReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &report)
	return report
}

func (suite *RoutesTestSuite) attachChart(reportID uuid.UUID) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="sprayChart"; filename="chart.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	suite.Require().NoError(err)
	_, err = part.Write([]byte("png bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req, err := http.NewRequest("POST", "/upload/spray-chart/"+reportID.String(), body)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token)

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *RoutesTestSuite) TestCoachWorkflow() {
	registered := suite.register("coach@cityhawks.com")
	suite.Equal("coach@cityhawks.com", registered.User.Email)

	// login works with the same credentials
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", map[string]string{
		"email": "coach@cityhawks.com", "password": "hawks2024",
	})
	var login auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &login)

	team := suite.createTeam("City Hawks", "Metro League")
	player := suite.createPlayer("Mike Johnson", "SS", "12", team.ID)
	report := suite.createReport(player.ID, "2024-05-18")
	suite.Equal(registered.User.ID, report.ScoutID)

	// chart upload stores a file and links it to the report
	uploadRecorder := suite.attachChart(report.ID)
	var chart service.SprayChartResponse
	testutils.AssertJSONResponse(suite.T(), uploadRecorder, http.StatusOK, &chart)
	suite.NotEmpty(chart.SprayChartURL)
	storedName := storage.FileName(chart.SprayChartURL)
	_, err := os.Stat(filepath.Join(suite.uploadDir, storedName))
	suite.NoError(err)

	// listings see all of it
	listRecorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/players?teamId="+team.ID.String(), nil, suite.authHeaders())
	var players []service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), listRecorder, http.StatusOK, &players)
	suite.Require().Len(players, 1)
	suite.Equal("City Hawks", players[0].TeamName)

	reportRecorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/reports?playerId="+player.ID.String(), nil, suite.authHeaders())
	var reports []service.ReportResponse
	testutils.AssertJSONResponse(suite.T(), reportRecorder, http.StatusOK, &reports)
	suite.Require().Len(reports, 1)
	suite.Require().NotNil(reports[0].Player)
	suite.Equal("Mike Johnson", reports[0].Player.Name)

	// deleting the team cascades players, reports and the chart file
	deleteRecorder := suite.httpSuite.MakeRequestWithHeaders("DELETE", "/teams/"+team.ID.String(), nil, suite.authHeaders())
	suite.Equal(http.StatusOK, deleteRecorder.Code)

	playersAfter := suite.httpSuite.MakeRequestWithHeaders("GET", "/players", nil, suite.authHeaders())
	var remaining []service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), playersAfter, http.StatusOK, &remaining)
	suite.Empty(remaining)

	reportsAfter := suite.httpSuite.MakeRequestWithHeaders("GET", "/reports", nil, suite.authHeaders())
	var remainingReports []service.ReportResponse
	testutils.AssertJSONResponse(suite.T(), reportsAfter, http.StatusOK, &remainingReports)
	suite.Empty(remainingReports)

	_, err = os.Stat(filepath.Join(suite.uploadDir, storedName))
	suite.True(os.IsNotExist(err))
}

func (suite *RoutesTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/teams", "/players", "/reports"} {
		recorder := suite.httpSuite.MakeRequest("GET", path, nil)
		suite.Equal(http.StatusUnauthorized, recorder.Code, path)
	}
}

func (suite *RoutesTestSuite) TestRegisterRejectsWrongCode() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]string{
		"email":            "coach@cityhawks.com",
		"password":         "hawks2024",
		"registrationCode": "WRONG",
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RoutesTestSuite) TestDeleteMissingTeamReturns404() {
	suite.register("coach@cityhawks.com")

	recorder := suite.httpSuite.MakeRequestWithHeaders("DELETE", "/teams/"+uuid.NewString(), nil, suite.authHeaders())
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestHealthEndpoints() {
	for _, path := range []string{"/health", "/health/ready", "/health/live"} {
		recorder := suite.httpSuite.MakeRequest("GET", path, nil)
		suite.Equal(http.StatusOK, recorder.Code, path)
	}
}

func (suite *RoutesTestSuite) TestUnknownRouteReturnsJSON404() {
	recorder := suite.httpSuite.MakeRequest("GET", "/nope", nil)
	require.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	suite.Equal("Endpoint not found", body["error"])
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
