package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/questionbank"
	"github.com/lshigami/InterviewBuddy/internal/search"
	"github.com/rs/zerolog/log"
)

const generatorMaxResults = 5

var questionKeywords = []string{"what", "how", "why", "describe", "explain", "tell"}

type QuestionService interface {
	// Generate returns up to n questions for the given role/domain/mode,
	// derived from search snippets with the static bank as fallback.
	Generate(ctx context.Context, role, domain string, mode model.Mode, n int) []model.Question
}

type questionService struct {
	searchProvider search.Provider
}

func NewQuestionService(searchProvider search.Provider) QuestionService {
	return &questionService{searchProvider: searchProvider}
}

func (s *questionService) Generate(ctx context.Context, role, domain string, mode model.Mode, n int) []model.Question {
	query := fmt.Sprintf("%s interview questions for %s", mode, role)
	if domain != "" {
		query += fmt.Sprintf(" with %s specialization", domain)
	}

	results := s.searchProvider.Search(ctx, query, generatorMaxResults)

	var questions []model.Question
	for _, result := range results {
		for _, fragment := range splitSentences(result.Snippet) {
			if !looksLikeQuestion(fragment) {
				continue
			}
			questions = append(questions, model.Question{
				Text:       strings.TrimSpace(fragment),
				Topic:      result.Title,
				Difficulty: "medium",
				Type:       strings.ToLower(string(mode)),
				Mode:       mode,
			})
		}
	}
	if len(questions) > 0 {
		if len(questions) > n {
			questions = questions[:n]
		}
		return questions
	}

	log.Info().Str("role", role).Str("domain", domain).Str("mode", string(mode)).
		Msg("No usable question sentences from search, using question bank")

	var bank []model.Question
	if mode == model.ModeTechnical {
		bank = questionbank.Technical(role, domain)
	} else {
		bank = questionbank.Behavioral(role)
	}
	if len(bank) > n {
		bank = bank[:n]
	}
	return bank
}

func splitSentences(snippet string) []string {
	return strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// looksLikeQuestion keeps fragments long enough to stand alone that contain
// at least one question-indicating keyword.
func looksLikeQuestion(fragment string) bool {
	if len(fragment) <= 20 {
		return false
	}
	lower := strings.ToLower(fragment)
	for _, kw := range questionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
