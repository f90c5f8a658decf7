package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTestRepo(t *testing.T) KnowledgeRepository {
	t.Helper()
	base, err := LoadKnowledgeBase(filepath.Join("testdata", "knowledge_base.json"))
	if err != nil {
		t.Fatalf("LoadKnowledgeBase: %v", err)
	}
	return NewKnowledgeRepository(base)
}

func TestDestinationLookupIsCaseInsensitive(t *testing.T) {
	repo := loadTestRepo(t)

	for _, name := range []string{"goa", "Goa", "GOA", "  Goa  "} {
		entry, ok := repo.DestinationByName(name)
		if !ok {
			t.Fatalf("expected lookup to succeed for %q", name)
		}
		if entry.BestTime != "November to February" {
			t.Errorf("lookup %q returned wrong entry: %+v", name, entry)
		}
	}
}

func TestDestinationLookupReturnsExactStoredEntry(t *testing.T) {
	repo := loadTestRepo(t)

	entry, ok := repo.DestinationByName("manali")
	if !ok {
		t.Fatal("expected manali to exist")
	}
	if len(entry.Activities) != 1 || entry.Activities[0] != "Paragliding" {
		t.Errorf("activities not preserved: %v", entry.Activities)
	}
	if len(entry.Tips) != 1 || entry.Tips[0] != "Carry woollens" {
		t.Errorf("tips not preserved: %v", entry.Tips)
	}
}

func TestUnknownDestinationReturnsZeroEntry(t *testing.T) {
	repo := loadTestRepo(t)

	entry, ok := repo.DestinationByName("Atlantis")
	if ok {
		t.Fatal("expected unknown destination to miss")
	}
	if entry.BestTime != "" || entry.Activities != nil {
		t.Errorf("expected zero entry, got %+v", entry)
	}
}

func TestPackingRulesAlwaysPopulated(t *testing.T) {
	repo := loadTestRepo(t)

	rules := repo.PackingRules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 packing categories, got %d", len(rules))
	}
	if len(rules["beach"]) != 2 {
		t.Errorf("beach rules not preserved: %v", rules["beach"])
	}
}

func TestLoadKnowledgeBaseMissingFile(t *testing.T) {
	if _, err := LoadKnowledgeBase(filepath.Join("testdata", "does_not_exist.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadKnowledgeBaseMalformed(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"not_json.json":        `{"destinations": `,
		"no_destinations.json": `{"general": {"packing": {"beach": []}}}`,
		"no_packing.json":      `{"destinations": {"goa": {"bestTime": "x"}}}`,
	}

	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := LoadKnowledgeBase(path); err == nil {
			t.Errorf("%s: expected load error", name)
		}
	}
}
