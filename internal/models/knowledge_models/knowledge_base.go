package knowledge_models

// KnowledgeEntry holds the curated travel facts for a single destination.
// Entries are built once at startup and never mutated afterwards.
type KnowledgeEntry struct {
	BestTime   string   `json:"bestTime"`
	Activities []string `json:"activities"`
	Cuisine    []string `json:"cuisine"`
	Tips       []string `json:"tips"`
}

// PackingRules maps an activity category (beach, mountain, city, ...) to the
// packing items recommended for it.
type PackingRules map[string][]string

// KnowledgeBase mirrors the on-disk layout of the knowledge resource:
// {"destinations": {<name>: entry}, "general": {"packing": rules}}
type KnowledgeBase struct {
	Destinations map[string]KnowledgeEntry `json:"destinations"`
	General      struct {
		Packing PackingRules `json:"packing"`
	} `json:"general"`
}
