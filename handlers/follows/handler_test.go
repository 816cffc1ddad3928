package follows

import (
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
	viewerID = "abc12345-e89b-12d3-a456-426614174000"
	targetID = "def67890-e89b-12d3-a456-426614174000"
)

func TestFollowUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(targetID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(targetID, "target@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "follows" WHERE follower_id = \$1 AND following_id = \$2`).
		WithArgs(viewerID, targetID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "follows" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("follow123"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/follows/:id", func(c *gin.Context) {
		c.Set("user_id", viewerID)
		FollowUser(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/follows/"+targetID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, viewerID, respBody["followerId"])
	assert.Equal(t, targetID, respBody["followingId"])
}

func TestFollowUser_AlreadyFollowing(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(targetID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(targetID, "target@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "follows" WHERE follower_id = \$1 AND following_id = \$2`).
		WithArgs(viewerID, targetID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "following_id"}).
			AddRow("follow123", viewerID, targetID))

	r := testutils.SetupTestRouter()
	r.POST("/follows/:id", func(c *gin.Context) {
		c.Set("user_id", viewerID)
		FollowUser(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/follows/"+targetID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowUser_Self(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.POST("/follows/:id", func(c *gin.Context) {
		c.Set("user_id", viewerID)
		FollowUser(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/follows/"+viewerID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// Unfollowing someone never followed is a no-op
func TestUnfollowUser_NotFollowing(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(targetID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(targetID, "target@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "follows" WHERE follower_id = \$1 AND following_id = \$2`).
		WithArgs(viewerID, targetID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/follows/:id", func(c *gin.Context) {
		c.Set("user_id", viewerID)
		UnfollowUser(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/follows/"+targetID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
