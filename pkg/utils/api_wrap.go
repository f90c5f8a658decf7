package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanTripFailureBody is the one externally visible error shape. Every
// pipeline failure collapses to it; the detail stays in the server log.
var PlanTripFailureBody = gin.H{"error": "Failed to plan trip"}

// RespondPlanFailure logs the underlying error with its trace id and returns
// the fixed 500 body. Error kinds are distinguished in the log only, never in
// the response.
func RespondPlanFailure(c *gin.Context, err error) {
	traceID, _ := c.Get("trace_id")

	switch {
	case errors.Is(err, ErrUpstreamTimeout):
		log.Printf("[%v] upstream timeout: %v", traceID, err)
	case errors.Is(err, ErrUpstreamFailure):
		log.Printf("[%v] upstream failure: %v", traceID, err)
	case errors.Is(err, ErrMalformedModelOutput):
		log.Printf("[%v] malformed model output: %v", traceID, err)
	case errors.Is(err, ErrInvalidRequest):
		log.Printf("[%v] invalid request: %v", traceID, err)
	default:
		log.Printf("[%v] plan trip error: %v", traceID, err)
	}

	c.JSON(http.StatusInternalServerError, PlanTripFailureBody)
}
