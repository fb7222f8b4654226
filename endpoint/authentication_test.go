package endpoint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamyaran/hamyar-api/middleware"
	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

func TestSignInAndRefresh(t *testing.T) {
	router, _ := setupEndpointTest(t)
	router.POST("/api/patients", Patients.Create)
	router.POST("/api/sign-in", SignIn)
	router.POST("/api/token/refresh", RefreshToken)
	authed := router.Group("")
	authed.Use(middleware.RequireAuth())
	authed.GET("/api/hello", Hello)

	w, _ := performJSON(t, router, http.MethodPost, "/api/patients", validPatientPayload("77788899900"))
	requireStatus(t, w, http.StatusCreated)

	// A provisioned account signs in with its national code.
	w, envelope := performJSON(t, router, http.MethodPost, "/api/sign-in", map[string]interface{}{
		"username": "77788899900",
		"password": "77788899900",
	})
	requireStatus(t, w, http.StatusOK)

	var pair tokenPair
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// The access token opens protected routes.
	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The refresh token does not.
	req = httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The refresh endpoint swaps the pair for a fresh one.
	w, envelope = performJSON(t, router, http.MethodPost, "/api/token/refresh", map[string]interface{}{
		"refresh": pair.RefreshToken,
	})
	requireStatus(t, w, http.StatusOK)
	refreshed := dataMap(t, envelope)
	assert.NotEmpty(t, refreshed["access"])
	assert.NotEmpty(t, refreshed["refresh"])

	// An access token cannot be used to refresh.
	w, _ = performJSON(t, router, http.MethodPost, "/api/token/refresh", map[string]interface{}{
		"refresh": pair.AccessToken,
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	router, db := setupEndpointTest(t)
	router.POST("/api/sign-in", SignIn)

	salt, err := util.GenerateSalt()
	require.NoError(t, err)
	hashed, err := util.HashPassword("correct-horse", salt)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Account{
		NationalCode: "88899900011",
		Username:     "known-user",
		Password:     hashed,
		PasswordSalt: salt,
	}).Error)

	// Wrong password and unknown username fail identically.
	w, envelope := performJSON(t, router, http.MethodPost, "/api/sign-in", map[string]interface{}{
		"username": "known-user",
		"password": "wrong",
	})
	requireStatus(t, w, http.StatusUnauthorized)
	wrongPassMsg := envelope.Message

	w, envelope = performJSON(t, router, http.MethodPost, "/api/sign-in", map[string]interface{}{
		"username": "no-such-user",
		"password": "wrong",
	})
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, wrongPassMsg, envelope.Message)

	// Correct credentials succeed.
	w, _ = performJSON(t, router, http.MethodPost, "/api/sign-in", map[string]interface{}{
		"username": "known-user",
		"password": "correct-horse",
	})
	requireStatus(t, w, http.StatusOK)
}

func TestSignInValidatesBody(t *testing.T) {
	router, _ := setupEndpointTest(t)
	router.POST("/api/sign-in", SignIn)

	w, envelope := performJSON(t, router, http.MethodPost, "/api/sign-in", map[string]interface{}{})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, envelope.Errors, "username")
	assert.Contains(t, envelope.Errors, "password")
}
