package services

import (
	"reflect"
	"strings"
	"testing"

	"tripgenie/internal/models/knowledge_models"
)

// fakeKnowledgeRepo is a hand-rolled repositories.KnowledgeRepository used to
// isolate the service layer from file loading.
type fakeKnowledgeRepo struct {
	destinations map[string]knowledge_models.KnowledgeEntry
	packing      knowledge_models.PackingRules
}

func (f *fakeKnowledgeRepo) DestinationByName(name string) (knowledge_models.KnowledgeEntry, bool) {
	entry, ok := f.destinations[strings.ToLower(strings.TrimSpace(name))]
	return entry, ok
}

func (f *fakeKnowledgeRepo) PackingRules() knowledge_models.PackingRules { return f.packing }

func (f *fakeKnowledgeRepo) DestinationCount() int { return len(f.destinations) }

func newFakeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{
		destinations: map[string]knowledge_models.KnowledgeEntry{
			"goa": {
				BestTime:   "November to February",
				Activities: []string{"Beach hopping", "Water sports"},
				Cuisine:    []string{"Goan fish curry"},
				Tips:       []string{"Rent a scooter"},
			},
		},
		packing: knowledge_models.PackingRules{
			"beach":      {"Sunscreen", "Swimwear"},
			"essentials": {"Government ID"},
		},
	}
}

func TestRetrieveKnownDestination(t *testing.T) {
	retriever := NewRetrieverService(newFakeRepo())

	got := retriever.Retrieve("GOA")
	if !got.Known {
		t.Fatal("expected destination to be known")
	}
	if got.Destination.BestTime != "November to February" {
		t.Errorf("wrong entry retrieved: %+v", got.Destination)
	}
	if len(got.General) != 2 {
		t.Errorf("expected full packing rules, got %v", got.General)
	}
}

func TestRetrieveUnknownDestination(t *testing.T) {
	retriever := NewRetrieverService(newFakeRepo())

	got := retriever.Retrieve("Atlantis")
	if got.Known {
		t.Fatal("expected unknown destination")
	}
	var zero knowledge_models.KnowledgeEntry
	if !reflect.DeepEqual(got.Destination, zero) {
		t.Errorf("expected zero entry, got %+v", got.Destination)
	}
	if len(got.General) != 2 {
		t.Errorf("packing rules must be populated even for unknown destinations, got %v", got.General)
	}
}

func TestRetrieveIsPure(t *testing.T) {
	retriever := NewRetrieverService(newFakeRepo())

	first := retriever.Retrieve("goa")
	second := retriever.Retrieve("goa")
	if !reflect.DeepEqual(first, second) {
		t.Error("identical retrievals should be identical")
	}
}
