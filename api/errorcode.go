package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",

		1200: "ticket not found",
		1201: "volunteer profile not found",
		1202: "volunteer profile already exists",
		1203: store.ErrServicesNotExist.Error(),
		1204: "unknown city of the location",
		1205: "the object already exists",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters = errorJSON(1010)

	errorTicketNotFound   = errorJSON(1200)
	errorProfileNotFound  = errorJSON(1201)
	errorProfileExists    = errorJSON(1202)
	errorServicesNotExist = errorJSON(1203)
	errorUnknownCity      = errorJSON(1204)
	errorAlreadyExists    = errorJSON(1205)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail keeps the code of a standardized error object and replaces its
// message with the error itself
func withDetail(obj ErrorResponse, err error) ErrorResponse {
	obj.Message = err.Error()
	return obj
}

// abortWithStoreError maps the store and filter errors to responses. notFound
// and exists describe the resource the request is about.
func abortWithStoreError(c *gin.Context, err error, notFound, exists ErrorResponse) {
	switch {
	case errors.Is(err, filter.ErrInvalidFilter):
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err), err)
	case errors.Is(err, store.ErrServicesNotExist):
		abortWithEncoding(c, http.StatusNotFound, withDetail(errorServicesNotExist, err), err)
	case errors.Is(err, store.ErrNotFound):
		abortWithEncoding(c, http.StatusNotFound, notFound, err)
	case errors.Is(err, store.ErrAlreadyExists):
		abortWithEncoding(c, http.StatusBadRequest, exists, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
