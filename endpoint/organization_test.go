package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/hamyar-api/model"
)

func validServiceCenterPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":                 "Mehr Center",
		"service_category":     "rehabilitation",
		"phone_number":         "02122334455",
		"state":                "Tehran",
		"city":                 "Tehran",
		"county":               "District 2",
		"address_detail":       "Azadi St, No 8",
		"contact_person_name":  "Reza Karimi",
		"contact_person_phone": "09123334455",
	}
}

func validPrivateCompanyPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":              "Tavan Co",
		"founded_year":      1390,
		"start_year":        1392,
		"activity":          "medical equipment",
		"ceo_name":          "Ali Rahimi",
		"ceo_phone_number":  "09121112233",
		"state":             "Tehran",
		"city":              "Tehran",
		"county":            "District 6",
		"workplace_address": "Enghelab St, No 20",
	}
}

func TestCreateServiceCenterStartsPending(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.POST("/api/service-centers", ServiceCenters.Create)

	payload := validServiceCenterPayload()
	// A submitted status must not be honored.
	payload["status"] = model.StatusActive

	w, envelope := performJSON(t, router, http.MethodPost, "/api/service-centers", payload)
	requireStatus(t, w, http.StatusCreated)
	assert.Equal(t, model.StatusPending, dataMap(t, envelope)["status"])

	var center model.ServiceCenter
	require.NoError(t, db.First(&center).Error)
	assert.Equal(t, model.StatusPending, center.Status)
}

func TestCreateServiceCenterRejectsBadWebsite(t *testing.T) {
	router, _ := setupEndpointTest(t)
	router.POST("/api/service-centers", ServiceCenters.Create)

	payload := validServiceCenterPayload()
	payload["website"] = "not a url"
	payload["email"] = "not-an-email"

	w, envelope := performJSON(t, router, http.MethodPost, "/api/service-centers", payload)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, envelope.Errors, "website")
	assert.Contains(t, envelope.Errors, "email")
}

func TestUpdateOrganizationStatus(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.PATCH("/api/service-centers/:id", ServiceCenters.Update)

	center := model.ServiceCenter{Name: "Pending Center", Status: model.StatusPending}
	require.NoError(t, db.Create(&center).Error)
	path := fmt.Sprintf("/api/service-centers/%d", center.ID)

	w, envelope := performJSON(t, router, http.MethodPatch, path,
		map[string]interface{}{"status": "approved-ish"})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, envelope.Errors, "status")

	w, _ = performJSON(t, router, http.MethodPatch, path,
		map[string]interface{}{"status": model.StatusActive})
	requireStatus(t, w, http.StatusOK)

	var reloaded model.ServiceCenter
	require.NoError(t, db.First(&reloaded, center.ID).Error)
	assert.Equal(t, model.StatusActive, reloaded.Status)
}

func TestOrganizationSearchColumns(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.GET("/api/service-centers", ServiceCenters.List)
	router.GET("/api/government-organizations", GovernmentOrganizations.List)

	require.NoError(t, db.Create(&model.ServiceCenter{
		Name: "Ahvaz Relief", ServiceCategory: "food", City: "Ahvaz", State: "Khuzestan",
	}).Error)
	require.NoError(t, db.Create(&model.ServiceCenter{
		Name: "Mehr Center", ServiceCategory: "rehab", City: "Tehran", State: "Tehran",
	}).Error)

	// Service centers match on state.
	w, envelope := performJSON(t, router, http.MethodGet, "/api/service-centers?search=Khuzestan", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 1, envelope.Pagination.TotalCount)

	require.NoError(t, db.Create(&model.GovernmentOrganization{
		Name: "Welfare Office", ParentBody: "Ministry", Type: "agency", ActivityArea: "social support", City: "Qom",
	}).Error)

	// Government organizations match on type and city, not parent body.
	w, envelope = performJSON(t, router, http.MethodGet, "/api/government-organizations?search=agency", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 1, envelope.Pagination.TotalCount)

	w, envelope = performJSON(t, router, http.MethodGet, "/api/government-organizations?search=Qom", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 1, envelope.Pagination.TotalCount)

	w, envelope = performJSON(t, router, http.MethodGet, "/api/government-organizations?search=Ministry", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 0, envelope.Pagination.TotalCount)
}

func TestCreatePrivateCompanyYearChecks(t *testing.T) {
	router, _ := setupEndpointTest(t)
	router.POST("/api/private-companies", PrivateCompanies.Create)

	payload := validPrivateCompanyPayload()
	payload["start_year"] = 1380
	w, envelope := performJSON(t, router, http.MethodPost, "/api/private-companies", payload)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, envelope.Errors, "start_year")

	payload = validPrivateCompanyPayload()
	payload["licensed"] = true
	w, envelope = performJSON(t, router, http.MethodPost, "/api/private-companies", payload)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, envelope.Errors, "license_year")

	payload = validPrivateCompanyPayload()
	payload["licensed"] = true
	payload["license_year"] = 1394
	w, _ = performJSON(t, router, http.MethodPost, "/api/private-companies", payload)
	requireStatus(t, w, http.StatusCreated)
}

func TestCreateGovernmentOrganization(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.POST("/api/government-organizations", GovernmentOrganizations.Create)

	w, _ := performJSON(t, router, http.MethodPost, "/api/government-organizations", map[string]interface{}{
		"name":              "Welfare Office",
		"type":              "agency",
		"activity_area":     "social support",
		"main_phone_number": "02177788899",
		"state":             "Tehran",
		"city":              "Tehran",
		"county":            "District 1",
		"central_address":   "Jomhouri Ave, No 3",
		"head_person_name":  "Maryam Ahmadi",
	})
	requireStatus(t, w, http.StatusCreated)

	var organization model.GovernmentOrganization
	require.NoError(t, db.First(&organization).Error)
	assert.Equal(t, model.StatusPending, organization.Status)
}

func TestCreateAssociation(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.POST("/api/charity-associations", Associations.Create)

	w, _ := performJSON(t, router, http.MethodPost, "/api/charity-associations", map[string]interface{}{
		"name":                 "Hope Association",
		"type":                 "ngo",
		"main_activity_area":   "child support",
		"contact_phone_number": "02166677788",
		"state":                "Fars",
		"city":                 "Shiraz",
		"county":               "District 3",
		"address_detail":       "Zand Blvd, No 44",
		"head_person_name":     "Nima Sadeghi",
		"head_person_phone":    "09170001122",
	})
	requireStatus(t, w, http.StatusCreated)

	var association model.Association
	require.NoError(t, db.First(&association).Error)
	assert.Equal(t, model.StatusPending, association.Status)
}
