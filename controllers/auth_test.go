package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartpark-backend/sessions"
	"smartpark-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *sessions.MemoryStore, sqlmock.Sqlmock) {
	t.Helper()
	mock := setupTestDB(t)

	store := sessions.NewMemoryStore()
	auth := NewAuthController(store)

	r := newTestRouter()
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.GET("/auth/check", auth.Check)
	r.POST("/auth/logout", auth.Logout)
	return r, store, mock
}

func postJSON(r *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: w.Header()}
	for _, c := range res.Cookies() {
		if c.Name == sessions.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterMissingFields(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := postJSON(r, "/auth/register", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "message")
}

func TestRegisterShortPassword(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := postJSON(r, "/auth/register", `{"username":"alice","password":"abc","fullName":"Alice A"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterSuccess(t *testing.T) {
	r, _, mock := setupAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password", "full_name"}))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	w := postJSON(r, "/auth/register", `{"username":"alice","password":"abc123","fullName":"Alice A"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "Alice A", user["fullName"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _, mock := setupAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password", "full_name"}).
			AddRow(1, "alice", "hash", "Alice A"))

	w := postJSON(r, "/auth/register", `{"username":"alice","password":"abc123","fullName":"Alice A"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	r, _, mock := setupAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password", "full_name"}))

	w := postJSON(r, "/auth/login", `{"username":"nobody","password":"abc123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	r, _, mock := setupAuthRouter(t)

	hash, err := utils.HashPassword("abc123")
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password", "full_name"}).
			AddRow(1, "alice", hash, "Alice A"))

	w := postJSON(r, "/auth/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginCheckLogoutFlow(t *testing.T) {
	r, _, mock := setupAuthRouter(t)

	hash, err := utils.HashPassword("abc123")
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password", "full_name"}).
			AddRow(1, "alice", hash, "Alice A"))

	w := postJSON(r, "/auth/login", `{"username":"alice","password":"abc123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	loginBody := decodeBody(t, w)
	user := loginBody["user"].(map[string]interface{})
	assert.Equal(t, "Alice A", user["fullName"])

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)

	// A valid cookie reports the logged-in user
	w = getPath(r, "/auth/check", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	checkBody := decodeBody(t, w)
	assert.Equal(t, true, checkBody["isLoggedIn"])
	assert.Equal(t, "alice", checkBody["user"].(map[string]interface{})["username"])

	// Logout invalidates the session
	w = postJSON(r, "/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = getPath(r, "/auth/check", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["isLoggedIn"])

	// Logging out again is still a 200
	w = postJSON(r, "/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckWithoutCookie(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := getPath(r, "/auth/check")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["isLoggedIn"])
}
