package service

import (
	"context"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/search"
)

// stubProvider records queries and serves canned results.
type stubProvider struct {
	results []search.Result
	queries []string
	calls   int
}

func (p *stubProvider) Search(_ context.Context, query string, maxResults int) []search.Result {
	p.calls++
	p.queries = append(p.queries, query)
	if len(p.results) > maxResults {
		return p.results[:maxResults]
	}
	return p.results
}

// emptyQuestionService simulates generation yielding nothing at all.
type emptyQuestionService struct{}

func (emptyQuestionService) Generate(context.Context, string, string, model.Mode, int) []model.Question {
	return nil
}
