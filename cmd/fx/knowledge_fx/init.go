package knowledge_fx

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/fx"

	"tripgenie/internal/repositories"
	"tripgenie/internal/services"
)

var Module = fx.Provide(
	ProvideKnowledgeRepository,
	ProvideRetrieverService)

// ProvideKnowledgeRepository loads the static knowledge base once at startup.
// A missing or malformed file aborts the fx app; the process must not serve
// requests without its data.
func ProvideKnowledgeRepository() (repositories.KnowledgeRepository, error) {
	path := getEnvWithDefault("KNOWLEDGE_BASE_PATH", "data/knowledge_base.json")

	base, err := repositories.LoadKnowledgeBase(path)
	if err != nil {
		return nil, fmt.Errorf("knowledge base unavailable: %w", err)
	}

	repo := repositories.NewKnowledgeRepository(base)
	log.Printf("Loaded knowledge base from %s (%d destinations)", path, repo.DestinationCount())
	return repo, nil
}

func ProvideRetrieverService(knowledgeRepo repositories.KnowledgeRepository) services.RetrieverServiceInterface {
	return services.NewRetrieverService(knowledgeRepo)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
