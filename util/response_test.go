package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCallSuccessOKEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		CallSuccessOK(c, APISuccessParams{Msg: "done", Data: gin.H{"id": 1}})
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "errors")
	assert.NotContains(t, body, "pagination")
}

func TestCallSuccessListCarriesPagination(t *testing.T) {
	w := record(func(c *gin.Context) {
		CallSuccessList(c, []int{1, 2, 3}, Pagination{
			TotalCount:  3,
			PageSize:    10,
			CurrentPage: 1,
			TotalPages:  1,
		})
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, pagination["total_count"])
	assert.EqualValues(t, 10, pagination["page_size"])
	assert.EqualValues(t, 1, pagination["current_page"])
	assert.EqualValues(t, 1, pagination["total_pages"])
}

func TestCallValidationErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		CallValidationError(c, "Validation failed", map[string][]string{
			"national_code": {"must be exactly 11 characters"},
		})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errors, "national_code")
}

func TestCallServerErrorHidesDetail(t *testing.T) {
	w := record(func(c *gin.Context) {
		CallServerError(c, APIErrorParams{
			Msg: "Failed to create patient",
			Err: fmt.Errorf("dial tcp 10.0.0.5:3306: connection refused"),
		})
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "Failed to create patient")
}
