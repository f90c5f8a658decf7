package services

import (
	"tripgenie/internal/models/knowledge_models"
	"tripgenie/internal/repositories"
)

// RetrievedContext bundles what the pipeline knows about one request's
// destination. Unknown destinations yield a zero-value entry with Known=false
// rather than an error; the generic packing rules ride along either way.
type RetrievedContext struct {
	Destination knowledge_models.KnowledgeEntry
	Known       bool
	General     knowledge_models.PackingRules
}

type RetrieverServiceInterface interface {
	Retrieve(destination string) RetrievedContext
}

type RetrieverService struct {
	knowledgeRepo repositories.KnowledgeRepository
}

func NewRetrieverService(knowledgeRepo repositories.KnowledgeRepository) RetrieverServiceInterface {
	return &RetrieverService{knowledgeRepo: knowledgeRepo}
}

// Retrieve is a pure lookup over the in-memory knowledge base. No ranking,
// no similarity search; a literal case-insensitive key match or nothing.
func (r *RetrieverService) Retrieve(destination string) RetrievedContext {
	entry, known := r.knowledgeRepo.DestinationByName(destination)
	return RetrievedContext{
		Destination: entry,
		Known:       known,
		General:     r.knowledgeRepo.PackingRules(),
	}
}
