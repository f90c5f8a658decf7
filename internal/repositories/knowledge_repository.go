package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tripgenie/internal/models/knowledge_models"
)

// KnowledgeRepository is the read-only lookup over the destination knowledge
// base. Implementations must be safe for concurrent readers.
type KnowledgeRepository interface {
	DestinationByName(name string) (knowledge_models.KnowledgeEntry, bool)
	PackingRules() knowledge_models.PackingRules
	DestinationCount() int
}

type knowledgeRepository struct {
	destinations map[string]knowledge_models.KnowledgeEntry
	packing      knowledge_models.PackingRules
}

// LoadKnowledgeBase reads the knowledge resource from disk. Callers treat any
// error as fatal for startup; there is no refresh path, a redeploy ships new
// data.
func LoadKnowledgeBase(path string) (*knowledge_models.KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}

	var base knowledge_models.KnowledgeBase
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}

	if base.Destinations == nil {
		return nil, fmt.Errorf("knowledge base %s: missing destinations section", path)
	}
	if base.General.Packing == nil {
		return nil, fmt.Errorf("knowledge base %s: missing general.packing section", path)
	}

	return &base, nil
}

// NewKnowledgeRepository indexes the loaded base by lower-cased destination
// name. The resulting repository is immutable.
func NewKnowledgeRepository(base *knowledge_models.KnowledgeBase) KnowledgeRepository {
	destinations := make(map[string]knowledge_models.KnowledgeEntry, len(base.Destinations))
	for name, entry := range base.Destinations {
		destinations[strings.ToLower(name)] = entry
	}

	return &knowledgeRepository{
		destinations: destinations,
		packing:      base.General.Packing,
	}
}

func (r *knowledgeRepository) DestinationByName(name string) (knowledge_models.KnowledgeEntry, bool) {
	entry, ok := r.destinations[strings.ToLower(strings.TrimSpace(name))]
	return entry, ok
}

func (r *knowledgeRepository) PackingRules() knowledge_models.PackingRules {
	return r.packing
}

func (r *knowledgeRepository) DestinationCount() int {
	return len(r.destinations)
}
