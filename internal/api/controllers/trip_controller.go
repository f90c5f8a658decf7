package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/services"
	"tripgenie/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
	}
}

// PlanTripHandler handles POST /api/plan-trip. The endpoint has exactly two
// terminal outcomes: 200 with the itinerary verbatim, or 500 with the fixed
// error body. A body that fails to bind takes the same failure path as any
// pipeline error.
func (t *TripController) PlanTripHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondPlanFailure(c, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err))
		return
	}

	result, err := t.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.RespondPlanFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
