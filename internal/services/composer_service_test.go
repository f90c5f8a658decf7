package services

import (
	"strings"
	"testing"
)

func composedSample(t *testing.T, destination string) string {
	t.Helper()
	retriever := NewRetrieverService(newFakeRepo())
	retrieved := retriever.Retrieve(destination)
	composer := NewComposerService()
	return composer.Compose("Plan a 5-day trip to Goa for 2 travelers", retrieved)
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := NewComposerService()
	retrieved := NewRetrieverService(newFakeRepo()).Retrieve("goa")

	query := "Plan a 5-day trip to Goa for 2 travelers"
	first := composer.Compose(query, retrieved)
	for i := 0; i < 20; i++ {
		if composer.Compose(query, retrieved) != first {
			t.Fatal("compose output varied across identical inputs")
		}
	}
}

func TestComposeContainsUserQuery(t *testing.T) {
	prompt := composedSample(t, "goa")
	if !strings.Contains(prompt, "Plan a 5-day trip to Goa for 2 travelers") {
		t.Error("prompt does not embed the literal user query")
	}
}

func TestComposeContainsDestinationFacts(t *testing.T) {
	prompt := composedSample(t, "goa")
	for _, want := range []string{"November to February", "Beach hopping", "Goan fish curry", "Rent a scooter"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing destination fact %q", want)
		}
	}
}

func TestComposeUnknownDestinationStillDumpsPackingRules(t *testing.T) {
	prompt := composedSample(t, "Atlantis")
	for _, want := range []string{"Sunscreen", "Swimwear", "Government ID"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing packing item %q for unknown destination", want)
		}
	}
	if !strings.Contains(prompt, "No curated facts") {
		t.Error("prompt should note the missing destination entry")
	}
}

func TestComposeContainsOutputShape(t *testing.T) {
	prompt := composedSample(t, "goa")
	for _, want := range []string{`"itinerary"`, `"packing_list"`, `"weather_forecast"`, `"booking_links"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing required shape key %s", want)
		}
	}
}
