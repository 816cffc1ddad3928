package report

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"modugarden-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const (
	curationID = "123e4567-e89b-12d3-a456-426614174000"
	userID     = "abc12345-e89b-12d3-a456-426614174000"
)

func TestReportCuration_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE id = \$1`).
		WithArgs(curationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(curationID, "Spring Garden"))

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE curation_id = \$1 AND reported_by = \$2`).
		WithArgs(curationID, userID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reports" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("report123"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/curations/:id/report", func(c *gin.Context) {
		c.Set("user_id", userID)
		ReportCuration(c)
	})

	body, _ := json.Marshal(map[string]string{"reason": "SPAM"})
	req, _ := http.NewRequest(http.MethodPost, "/curations/"+curationID+"/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestReportCuration_InvalidReason(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE id = \$1`).
		WithArgs(curationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(curationID, "Spring Garden"))

	r := testutils.SetupTestRouter()
	r.POST("/curations/:id/report", func(c *gin.Context) {
		c.Set("user_id", userID)
		ReportCuration(c)
	})

	body, _ := json.Marshal(map[string]string{"reason": "I_DONT_LIKE_GARDENS"})
	req, _ := http.NewRequest(http.MethodPost, "/curations/"+curationID+"/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReportCuration_AlreadyReported(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE id = \$1`).
		WithArgs(curationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(curationID, "Spring Garden"))

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE curation_id = \$1 AND reported_by = \$2`).
		WithArgs(curationID, userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "curation_id", "reported_by"}).
			AddRow("report123", curationID, userID))

	r := testutils.SetupTestRouter()
	r.POST("/curations/:id/report", func(c *gin.Context) {
		c.Set("user_id", userID)
		ReportCuration(c)
	})

	body, _ := json.Marshal(map[string]string{"reason": "SPAM"})
	req, _ := http.NewRequest(http.MethodPost, "/curations/"+curationID+"/report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
