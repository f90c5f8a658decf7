package response_models

// ItineraryDay is one day of the generated plan.
type ItineraryDay struct {
	Day            int      `json:"day"`
	Date           string   `json:"date,omitempty"`
	Activities     []string `json:"activities"`
	Meals          []string `json:"meals"`
	Transportation string   `json:"transportation"`
}

type BookingLinks struct {
	Flights string `json:"flights"`
	Hotels  string `json:"hotels"`
}

// BudgetEstimate is optional in the model output; when present it is passed
// through to the client untouched.
type BudgetEstimate struct {
	Flights       string `json:"flights,omitempty"`
	Accommodation string `json:"accommodation,omitempty"`
	Food          string `json:"food,omitempty"`
	Activities    string `json:"activities,omitempty"`
	Total         string `json:"total,omitempty"`
}

// ItineraryResult is the shape the model is instructed to return and the
// body the endpoint relays verbatim on success.
type ItineraryResult struct {
	Itinerary       []ItineraryDay  `json:"itinerary"`
	PackingList     []string        `json:"packing_list"`
	WeatherForecast string          `json:"weather_forecast"`
	BookingLinks    BookingLinks    `json:"booking_links"`
	TravelTips      []string        `json:"travel_tips,omitempty"`
	BudgetEstimate  *BudgetEstimate `json:"budget_estimate,omitempty"`
}
