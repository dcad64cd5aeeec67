package tags

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const testTagID = "33333333-3333-3333-3333-333333333333"

func TestCreateTag_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE name = \$1 ORDER BY "tags"\."id" LIMIT \$2`).
		WithArgs("go", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tags" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(testTagID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/tags", CreateTag)

	body, _ := json.Marshal(map[string]string{"name": "go"})
	req, _ := http.NewRequest(http.MethodPost, "/admin/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var envelope struct {
		Data models.Tag `json:"data"`
	}
	json.Unmarshal(resp.Body.Bytes(), &envelope)
	assert.Equal(t, "go", envelope.Data.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTag_DuplicateName(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE name = \$1`).
		WithArgs("go", 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(testTagID, "go"))

	r := testutils.SetupTestRouter()
	r.POST("/admin/tags", CreateTag)

	body, _ := json.Marshal(map[string]string{"name": "go"})
	req, _ := http.NewRequest(http.MethodPost, "/admin/tags", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTag_DetachesPostsAndDeletes(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE id = \$1`).
		WithArgs(testTagID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(testTagID, "go"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM post_tags WHERE tag_id = \$1`).
		WithArgs(testTagID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "tags" WHERE "tags"\."id" = \$1`).
		WithArgs(testTagID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/admin/tags/:id", DeleteTag)

	req, _ := http.NewRequest(http.MethodDelete, "/admin/tags/"+testTagID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTag_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE id = \$1`).
		WithArgs(testTagID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/admin/tags/:id", DeleteTag)

	req, _ := http.NewRequest(http.MethodDelete, "/admin/tags/"+testTagID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTag_ConflictingName(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE id = \$1`).
		WithArgs(testTagID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(testTagID, "go"))

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE name = \$1 AND id <> \$2`).
		WithArgs("python", testTagID, 1).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("other-tag", "python"))

	r := testutils.SetupTestRouter()
	r.PUT("/admin/tags/:id", UpdateTag)

	body, _ := json.Marshal(map[string]string{"name": "python"})
	req, _ := http.NewRequest(http.MethodPut, "/admin/tags/"+testTagID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
