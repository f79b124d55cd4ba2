package service

import (
	"context"
	"fmt"

	"github.com/lshigami/InterviewBuddy/internal/search"
)

const noResearchResults = "I couldn't find specific information about this topic. Would you like to rephrase your question?"

type ResearchService interface {
	// Digest renders a short markdown digest of up to three search results
	// for an arbitrary preparation query.
	Digest(ctx context.Context, query string) string
}

type researchService struct {
	searchProvider search.Provider
}

func NewResearchService(searchProvider search.Provider) ResearchService {
	return &researchService{searchProvider: searchProvider}
}

func (s *researchService) Digest(ctx context.Context, query string) string {
	results := s.searchProvider.Search(ctx, query, 5)
	if len(results) == 0 {
		return noResearchResults
	}

	digest := fmt.Sprintf("Based on my research about '%s', I found these insights:\n\n", query)
	for i, result := range results {
		if i >= 3 {
			break
		}
		digest += fmt.Sprintf("%d. **%s**: %s\n   Source: %s\n\n", i+1, result.Title, result.Snippet, result.URL)
	}
	digest += "Would you like me to search for more specific information on any aspect?"
	return digest
}
