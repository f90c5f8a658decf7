package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tripgenie/internal/models/request_models"
	"tripgenie/internal/models/response_models"
	"tripgenie/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResult, error)
}

// PlannerService runs the request pipeline strictly in sequence:
// retrieve -> compose -> invoke -> handle. The model call is the only
// suspension point; nothing is shared or persisted across requests.
type PlannerService struct {
	retriever RetrieverServiceInterface
	composer  ComposerServiceInterface
	model     utils.ModelClientInterface
}

func NewPlannerService(
	retriever RetrieverServiceInterface,
	composer ComposerServiceInterface,
	model utils.ModelClientInterface,
) PlannerServiceInterface {
	return &PlannerService{
		retriever: retriever,
		composer:  composer,
		model:     model,
	}
}

func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.ItineraryResult, error) {
	query := buildTripQuery(req)
	log.Printf("planning trip: %s", query)

	retrieved := p.retriever.Retrieve(req.Destination)
	prompt := p.composer.Compose(query, retrieved)

	out, err := p.model.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	return p.handleModelOutput(out)
}

// buildTripQuery derives the natural-language request the prompt embeds.
// The day count is the whole-day difference of the two trip dates.
func buildTripQuery(req request_models.TripRequest) string {
	days := utils.TripDayCount(req.StartDate(), req.EndDate())
	return fmt.Sprintf("Plan a %d-day trip to %s for %d travelers", days, req.Destination, req.Travelers)
}

// handleModelOutput parses the completion as an ItineraryResult and checks
// the core shape before anything reaches the client. Token usage is logged
// here; that is the whole extent of usage tracking.
func (p *PlannerService) handleModelOutput(out utils.ModelOutput) (*response_models.ItineraryResult, error) {
	log.Printf("token usage: prompt=%d completion=%d total=%d",
		out.Usage.PromptTokens, out.Usage.CompletionTokens, out.Usage.TotalTokens)

	cleaned := utils.CleanJSONResponse(out.Text)

	var result response_models.ItineraryResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	if err := validateItinerary(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	return &result, nil
}

func validateItinerary(result *response_models.ItineraryResult) error {
	if len(result.Itinerary) == 0 {
		return fmt.Errorf("itinerary is empty")
	}
	for i, day := range result.Itinerary {
		if day.Day == 0 {
			return fmt.Errorf("itinerary entry %d has no day number", i)
		}
	}
	if result.PackingList == nil {
		return fmt.Errorf("packing_list is missing")
	}
	if result.WeatherForecast == "" {
		return fmt.Errorf("weather_forecast is missing")
	}
	return nil
}
