package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope returned by every endpoint.
// The field set and key names are a stable interface contract.
type APIResponse struct {
	OK         bool                `json:"ok"`
	Message    string              `json:"message,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

// Pagination is the nested pagination block carried by list responses.
type Pagination struct {
	TotalCount  int64 `json:"total_count"`
	PageSize    int   `json:"page_size"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

// CallSuccessOK returns a 200 success envelope.
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{
		OK:      true,
		Message: params.Msg,
		Data:    params.Data,
	})
}

// CallSuccessCreated returns a 201 success envelope for newly created records.
func CallSuccessCreated(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusCreated, APIResponse{
		OK:      true,
		Message: params.Msg,
		Data:    params.Data,
	})
}

// CallSuccessList returns a 200 success envelope with a pagination block.
func CallSuccessList(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, APIResponse{
		OK:         true,
		Data:       data,
		Pagination: &pagination,
	})
}

// CallValidationError returns a 400 failure envelope with per-field errors.
// Validation failures never mutate storage.
func CallValidationError(c *gin.Context, msg string, errors map[string][]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		OK:      false,
		Message: msg,
		Errors:  errors,
	})
}

// CallUserError returns a 400 failure envelope for malformed requests.
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, failureResponse(params))
}

// CallErrorNotFound returns a 404 failure envelope.
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, failureResponse(params))
}

// CallServerError returns a 500 failure envelope. The underlying error goes
// to the log, not the wire.
func CallServerError(c *gin.Context, params APIErrorParams) {
	if params.Err != nil {
		Log().WithError(params.Err).Error(params.Msg)
	}
	c.JSON(http.StatusInternalServerError, failureResponse(params))
}

// CallUserNotAuthorized returns a 401 failure envelope.
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusUnauthorized, failureResponse(params))
}

func failureResponse(params APIErrorParams) APIResponse {
	return APIResponse{
		OK:      false,
		Message: params.Msg,
	}
}
