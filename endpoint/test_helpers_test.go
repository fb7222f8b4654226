package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hamyaran/hamyar-api/config"
	"github.com/hamyaran/hamyar-api/middleware"
	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

// setupEndpointTest opens the shared in-memory database with a clean schema
// and returns a router wired the way main sets it up.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)
	util.SetJWTSecret("endpoint-test-secret")

	db, err := config.ConnectMySQL()
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(model.Migrations()...))
	require.NoError(t, db.AutoMigrate(model.Migrations()...))

	router := gin.New()
	router.Use(middleware.DatabaseMiddleware(db))
	return router, db
}

// performJSON issues a JSON request against the router and decodes the
// response envelope.
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope util.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

// validPatientPayload returns a complete patient registration body keyed by
// the given national code.
func validPatientPayload(nationalCode string) map[string]interface{} {
	return map[string]interface{}{
		"national_code":        nationalCode,
		"first_name":           "Sara",
		"last_name":            "Mohammadi",
		"phone_number":         "09121234567",
		"gender":               "female",
		"education":            "diploma",
		"how_referred":         "friend",
		"state":                "Tehran",
		"city":                 "Tehran",
		"county":               "District 4",
		"home_address":         "Valiasr St, No 12",
		"father_name":          "Hossein",
		"age":                  42,
		"marital_status":       "married",
		"housing_status":       "rented",
		"sickness_description": "chronic back pain",
	}
}

func dataMap(t *testing.T, envelope util.APIResponse) map[string]interface{} {
	t.Helper()
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", envelope.Data)
	return data
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
