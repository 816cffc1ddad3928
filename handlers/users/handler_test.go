package users

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

const userID = "abc12345-e89b-12d3-a456-426614174000"

func TestGetUserByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/users/:id", GetUserByID)

	req, _ := http.NewRequest(http.MethodGet, "/users/"+userID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetUserByID_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nickname", "authority"}).
			AddRow(userID, "garden@example.com", "gardener", "ROLE_USER"))

	mock.ExpectQuery(`SELECT (.+) FROM "user_categories" WHERE "user_categories"."user_id" = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "category_id"}))

	r := testutils.SetupTestRouter()
	r.GET("/users/:id", GetUserByID)

	req, _ := http.NewRequest(http.MethodGet, "/users/"+userID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "gardener", respBody["nickname"])
	assert.Equal(t, "garden@example.com", respBody["email"])
}

// Departure with nothing owned still clears like, storage and follow rows
func TestDeleteMe_NoContent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(userID, "garden@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "curation_id" FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"curation_id"}))
	mock.ExpectExec(`DELETE FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "curation_storages" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 OR following_id = \$2`).
		WithArgs(userID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM user_categories WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/users/me", func(c *gin.Context) {
		c.Set("user_id", userID)
		DeleteMe(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User deleted successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Likes left on other users' curations bring those counters down with the rows
func TestDeleteMe_DecrementsLikedCurations(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	likedID1 := "c1111111-e89b-12d3-a456-426614174000"
	likedID2 := "c2222222-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(userID, "garden@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "curation_id" FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"curation_id"}).
			AddRow(likedID1).
			AddRow(likedID2))
	// The counters come down before the like rows disappear
	mock.ExpectExec(`UPDATE "curations" SET "like_count"=like_count - \$1 WHERE id IN \(\$2,\$3\)`).
		WithArgs(1, likedID1, likedID2).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "curation_storages" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 OR following_id = \$2`).
		WithArgs(userID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM user_categories WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/users/me", func(c *gin.Context) {
		c.Set("user_id", userID)
		DeleteMe(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Owned curations go through the full cascade inside the departure transaction
func TestDeleteMe_CascadesOwnedCurations(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	ownedID := "c3333333-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(userID, "garden@example.com"))

	mock.ExpectQuery(`SELECT (.+) FROM "curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id", "preview_image"}).
			AddRow(ownedID, "Spring Garden", userID, ""))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "curation_storages" WHERE curation_id = \$1`).
		WithArgs(ownedID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "like_curations" WHERE curation_id = \$1`).
		WithArgs(ownedID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "reports" WHERE curation_id = \$1`).
		WithArgs(ownedID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "curations" WHERE "curations"."id" = \$1`).
		WithArgs(ownedID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "curation_id" FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"curation_id"}))
	mock.ExpectExec(`DELETE FROM "like_curations" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "curation_storages" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 OR following_id = \$2`).
		WithArgs(userID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM user_categories WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/users/me", func(c *gin.Context) {
		c.Set("user_id", userID)
		DeleteMe(c)
	})

	req, _ := http.NewRequest(http.MethodDelete, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
