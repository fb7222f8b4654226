package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/hamyar-api/model"
)

func TestGetPatientByNationalCode(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.GET("/api/patient-by-national-code/:national_code", GetPatientByNationalCode)

	// Unknown person.
	w, envelope := performJSON(t, router, http.MethodGet, "/api/patient-by-national-code/00000000000", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "No account found with this national code", envelope.Message)

	// Known account that never registered as a patient.
	account := model.Account{NationalCode: "66677788899", Username: "66677788899", FirstName: "Leila"}
	require.NoError(t, db.Create(&account).Error)
	w, envelope = performJSON(t, router, http.MethodGet, "/api/patient-by-national-code/66677788899", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "This national code does not belong to a patient", envelope.Message)

	// Patient profile attached.
	require.NoError(t, db.Create(&model.Patient{AccountID: account.ID, Age: 30}).Error)
	w, envelope = performJSON(t, router, http.MethodGet, "/api/patient-by-national-code/66677788899", nil)
	requireStatus(t, w, http.StatusOK)

	data := dataMap(t, envelope)
	assert.EqualValues(t, 30, data["age"])
	accountData, ok := data["account"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Leila", accountData["first_name"])
}
