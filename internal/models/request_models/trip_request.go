package request_models

// TripRequest is the body of POST /api/plan-trip.
// Dates holds [start, end] as "YYYY-MM-DD" strings. Fields are deliberately
// unvalidated at bind time; a missing destination or date simply flows into
// the derived query.
type TripRequest struct {
	Destination string   `json:"destination"`
	Travelers   int      `json:"travelers"`
	Dates       []string `json:"dates"`
}

// StartDate returns the first date or "" when absent.
func (r TripRequest) StartDate() string {
	if len(r.Dates) > 0 {
		return r.Dates[0]
	}
	return ""
}

// EndDate returns the second date or "" when absent.
func (r TripRequest) EndDate() string {
	if len(r.Dates) > 1 {
		return r.Dates[1]
	}
	return ""
}
