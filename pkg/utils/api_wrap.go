package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusCreated, data, message)
}

func RespondWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

// Not-found errors keep their own message; validation errors echo the
// wrapped detail so clients can see which field was rejected.
var serviceErrors = []errorMapping{
	{ErrTripNotFound, http.StatusNotFound, "Trip not found"},
	{ErrItineraryItemNotFound, http.StatusNotFound, "Itinerary item not found"},
	{ErrCityNotFound, http.StatusNotFound, "City not found"},
	{ErrPlaceNotFound, http.StatusNotFound, "Place not found"},
	{ErrUserNotFound, http.StatusNotFound, "User not found"},
	{ErrConversationNotFound, http.StatusNotFound, "Conversation not found"},
	{ErrInvalidFilter, http.StatusBadRequest, ""},
	{ErrInvalidDate, http.StatusBadRequest, ""},
	{ErrInvalidDateRange, http.StatusBadRequest, ""},
	{ErrItemOutsideTrip, http.StatusBadRequest, ""},
	{ErrInvalidInput, http.StatusBadRequest, ""},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			RespondError(c, m.code, msg)
			return
		}
	}

	if errors.Is(err, ErrStorageError) {
		zap.L().Error("storage error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
	} else {
		zap.L().Error("unknown error", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
