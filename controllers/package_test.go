package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPackageRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	mock := setupTestDB(t)

	r := newTestRouter()
	r.GET("/packages", GetPackages)
	r.POST("/packages", CreatePackage)
	r.GET("/packages/:id", GetPackage)
	r.DELETE("/packages/:id", DeletePackage)
	return r, mock
}

func packageColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"package_number", "package_name", "package_description", "package_price"})
}

func TestCreatePackageSuccess(t *testing.T) {
	r, mock := setupPackageRouter(t)

	mock.ExpectQuery(`INSERT INTO "packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"package_number"}).AddRow(7))

	w := postJSON(r, "/packages", `{"packageName":"Basic Wash","packageDescription":"Exterior wash","packagePrice":5000}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	pkg := body["package"].(map[string]interface{})
	assert.Equal(t, float64(7), pkg["PackageNumber"])
	assert.Equal(t, "Basic Wash", pkg["PackageName"])
	assert.Equal(t, float64(5000), pkg["PackagePrice"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePackageRejectsNonPositivePrice(t *testing.T) {
	r, _ := setupPackageRouter(t)

	w := postJSON(r, "/packages", `{"packageName":"Basic Wash","packageDescription":"Exterior wash","packagePrice":-10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/packages", `{"packageName":"Basic Wash","packageDescription":"Exterior wash","packagePrice":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPackageNotFound(t *testing.T) {
	r, mock := setupPackageRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "packages"`).
		WillReturnRows(packageColumns())

	w := getPath(r, "/packages/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Package not found", decodeBody(t, w)["message"])
}

func TestGetPackages(t *testing.T) {
	r, mock := setupPackageRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "packages"`).
		WillReturnRows(packageColumns().
			AddRow(1, "Basic Wash", "Exterior wash", 5000.0).
			AddRow(2, "Full Wash", "Exterior and interior", 9000.0))

	w := getPath(r, "/packages")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Basic Wash")
	assert.Contains(t, w.Body.String(), "Full Wash")
}

func TestDeletePackageNotFound(t *testing.T) {
	r, mock := setupPackageRouter(t)

	mock.ExpectExec(`DELETE FROM "packages"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/packages/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
