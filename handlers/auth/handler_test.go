package auth

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/middleware"
	"github.com/sunnyBaby1024/blog/testutils"
)

func sqlmockResult() driver.Result {
	return sqlmock.NewResult(1, 1)
}

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func loginRequest(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestLogin_Success_SetsSessionCookie(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE username = \$1 ORDER BY "admins"\."id" LIMIT \$2`).
		WithArgs("admin", 1).
		WillReturnRows(mock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow("admin-uuid", "admin", string(hash)))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "admins" SET "last_login"=\$1 WHERE "id" = \$2`).
		WillReturnResult(sqlmockResult())
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/login", Login)

	resp := loginRequest(t, r, "admin", "Correct1")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "token")

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie, "login must set the session cookie")
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLogin_WrongPassword_GenericRejection(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE username = \$1`).
		WithArgs("admin", 1).
		WillReturnRows(mock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow("admin-uuid", "admin", string(hash)))

	r := testutils.SetupTestRouter()
	r.POST("/admin/login", Login)

	resp := loginRequest(t, r, "admin", "wrong")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid username or password")
}

func TestLogin_UnknownUser_SameRejectionAsWrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/admin/login", Login)

	resp := loginRequest(t, r, "ghost", "whatever")

	// Identical answer for unknown user and wrong password
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid username or password")
}

func TestLogin_MissingFields(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/admin/login", Login)

	body, _ := json.Marshal(map[string]string{"username": "admin"})
	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogout_ClearsCookieAndRedirects(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/admin/logout", Logout)

	req, _ := http.NewRequest(http.MethodGet, "/admin/logout", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
	assert.Negative(t, sessionCookie.MaxAge)
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE id = \$1`).
		WithArgs("admin-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow("admin-uuid", "admin", string(hash)))

	r := testutils.SetupTestRouter()
	r.PUT("/admin/password", func(c *gin.Context) {
		c.Set("admin_id", "admin-uuid")
		UpdatePassword(c)
	})

	body, _ := json.Marshal(map[string]string{
		"currentPassword": "nope",
		"newPassword":     "NewPass1",
	})
	req, _ := http.NewRequest(http.MethodPut, "/admin/password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	// No UPDATE was queued, so an executed one would fail the mock
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword_WeakNewPasswordRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.PUT("/admin/password", func(c *gin.Context) {
		c.Set("admin_id", "admin-uuid")
		UpdatePassword(c)
	})

	body, _ := json.Marshal(map[string]string{
		"currentPassword": "Correct1",
		"newPassword":     "weak",
	})
	req, _ := http.NewRequest(http.MethodPut, "/admin/password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE id = \$1`).
		WithArgs("admin-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow("admin-uuid", "admin", string(hash)))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "admins" SET "password_hash"=\$1 WHERE "id" = \$2`).
		WillReturnResult(sqlmockResult())
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/admin/password", func(c *gin.Context) {
		c.Set("admin_id", "admin-uuid")
		UpdatePassword(c)
	})

	body, _ := json.Marshal(map[string]string{
		"currentPassword": "Correct1",
		"newPassword":     "NewPass1",
	})
	req, _ := http.NewRequest(http.MethodPut, "/admin/password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
