package services

import (
	"fmt"
	"sort"
	"strings"
)

type ComposerServiceInterface interface {
	Compose(userQuery string, retrieved RetrievedContext) string
}

type ComposerService struct{}

func NewComposerService() ComposerServiceInterface {
	return &ComposerService{}
}

// itineraryExample is the literal output shape the model is told to match.
const itineraryExample = `{
  "itinerary": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": ["Activity 1", "Activity 2"],
      "meals": ["Breakfast location", "Lunch location", "Dinner location"],
      "transportation": "Transportation method"
    }
  ],
  "packing_list": ["Item 1", "Item 2", "Item 3"],
  "weather_forecast": "Weather summary for the trip",
  "booking_links": {
    "flights": "Flight booking URL or recommendation",
    "hotels": "Hotel booking URL or recommendation"
  }
}`

// Compose merges the role/task/format/context template with the retrieved
// knowledge and the derived user query into one prompt. Output is fully
// deterministic for identical inputs; packing categories are emitted in
// sorted order for that reason.
func (s *ComposerService) Compose(userQuery string, retrieved RetrievedContext) string {
	var prompt strings.Builder

	prompt.WriteString("You are a Smart Travel Assistant, an AI-powered travel planning expert ")
	prompt.WriteString("that creates personalized trip itineraries, packing lists, and booking recommendations.\n\n")

	prompt.WriteString("Destination knowledge:\n")
	if retrieved.Known {
		prompt.WriteString(fmt.Sprintf("- Best time to visit: %s\n", retrieved.Destination.BestTime))
		prompt.WriteString(fmt.Sprintf("- Activities: %s\n", strings.Join(retrieved.Destination.Activities, ", ")))
		prompt.WriteString(fmt.Sprintf("- Local cuisine: %s\n", strings.Join(retrieved.Destination.Cuisine, ", ")))
		prompt.WriteString(fmt.Sprintf("- Tips: %s\n", strings.Join(retrieved.Destination.Tips, "; ")))
	} else {
		prompt.WriteString("- No curated facts for this destination; rely on general travel knowledge.\n")
	}

	prompt.WriteString("\nGeneral packing rules by activity type:\n")
	categories := make([]string, 0, len(retrieved.General))
	for category := range retrieved.General {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		prompt.WriteString(fmt.Sprintf("- %s: %s\n", category, strings.Join(retrieved.General[category], ", ")))
	}

	prompt.WriteString(fmt.Sprintf("\nUser Request: %s\n\n", userQuery))

	prompt.WriteString("Instructions:\n")
	prompt.WriteString("1. Generate a detailed day-by-day itinerary for the requested trip\n")
	prompt.WriteString("2. Create a personalized packing list using the rules above\n")
	prompt.WriteString("3. Include a weather forecast summary for the destination and dates\n")
	prompt.WriteString("4. Provide booking recommendations for flights and hotels\n")
	prompt.WriteString("5. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(itineraryExample)

	return prompt.String()
}
