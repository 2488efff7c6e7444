package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/controllers"
	"github.com/mechcorp/maintenance-api/middleware"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
	"github.com/mechcorp/maintenance-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportIntegrationTestSuite exercises the report routes through the real
// auth middleware with a mock renderer and archive.
type ReportIntegrationTestSuite struct {
	suite.Suite
	router   *gin.Engine
	db       *gorm.DB
	renderer *services.MockPDFRenderer
	archive  *services.MockReportArchive
}

func (suite *ReportIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	testutil.MustSetTestEnvironment(suite.T())
	testutil.InstallTestTokenService()
}

func (suite *ReportIntegrationTestSuite) SetupTest() {
	suite.db = testutil.OpenTestDB(suite.T())

	suite.renderer = services.NewMockPDFRenderer()
	suite.renderer.SetAsMockForTesting()
	suite.archive = services.NewMockReportArchive()
	suite.archive.SetAsMockForTesting()

	suite.router = gin.New()
	reports := suite.router.Group("/api/reports", middleware.RequireAuth())
	{
		reports.GET("/equipment-status", controllers.EquipmentStatusReport)
		reports.GET("/work-order-summary", controllers.WorkOrderSummaryReport)
		reports.GET("/technician-workload", controllers.TechnicianWorkloadReport)
	}
}

func (suite *ReportIntegrationTestSuite) TearDownTest() {
	services.SetReportArchive(nil)
	testutil.CloseTestDB(suite.db)
}

func (suite *ReportIntegrationTestSuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestReportsRequireAuthentication verifies the report surface is closed
// without a token.
func (suite *ReportIntegrationTestSuite) TestReportsRequireAuthentication() {
	w := suite.get("/api/reports/equipment-status", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Empty(suite.T(), suite.renderer.RenderedHTML())
}

// TestAllReportsDownloadAsPDF requests each report and verifies the PDF
// attachment headers, the rendered content and the archived copy.
func (suite *ReportIntegrationTestSuite) TestAllReportsDownloadAsPDF() {
	technician := testutil.CreateUser(suite.T(), suite.db, "tess", models.RoleTechnician)
	token := testutil.IssueToken(suite.T(), &technician)

	equipment := models.Equipment{Name: "Press 9", Type: "press", Status: models.EquipmentOperational, NextMaintenanceDate: time.Now()}
	suite.NoError(suite.db.Create(&equipment).Error)
	order := models.WorkOrder{Title: "Replace seals", Description: "d", EquipmentID: equipment.ID, CreatedByID: technician.ID, AssignedTechnicianID: &technician.ID, Priority: models.PriorityMedium, Status: models.WorkOrderInProgress, DueDate: time.Now()}
	suite.NoError(suite.db.Create(&order).Error)

	reports := []struct {
		path     string
		filename string
		expect   string
	}{
		{"/api/reports/equipment-status", "equipment-status-report.pdf", "Press 9"},
		{"/api/reports/work-order-summary", "work-order-summary-report.pdf", "Replace seals"},
		{"/api/reports/technician-workload", "technician-workload-report.pdf", "tess - Active Work Orders: 1"},
	}

	for _, report := range reports {
		w := suite.get(report.path, token)
		assert.Equal(suite.T(), http.StatusOK, w.Code, report.path)
		assert.Equal(suite.T(), "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(suite.T(), "attachment; filename="+report.filename, w.Header().Get("Content-Disposition"))
		assert.Contains(suite.T(), suite.renderer.LastHTML(), report.expect)
	}

	// Every download left an archived copy
	assert.Len(suite.T(), suite.archive.StoredReports(), 3)
}

// TestRenderFailureReturnsError verifies a renderer failure surfaces as a
// 500 with a message body, never a broken attachment.
func (suite *ReportIntegrationTestSuite) TestRenderFailureReturnsError() {
	technician := testutil.CreateUser(suite.T(), suite.db, "tess", models.RoleTechnician)
	token := testutil.IssueToken(suite.T(), &technician)

	suite.renderer.FailWith("no usable sandbox")

	w := suite.get("/api/reports/technician-workload", token)
	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "no usable sandbox")
	assert.Empty(suite.T(), suite.archive.StoredReports())
}

func TestReportIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ReportIntegrationTestSuite))
}
