package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/search"
)

// Evaluation is the result of scoring one answer against the rubric.
type Evaluation struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Reasoning    string   `json:"reasoning"`
	Tags         []string `json:"tags"`
	Improvements []string `json:"improvements"`
}

type EvaluatorService interface {
	// Evaluate scores an answer from its text alone.
	Evaluate(mode model.Mode, question, answer string) Evaluation
	// EvaluateWithSearch additionally annotates the reasoning with reference
	// snippets. Search failures never block scoring; the score is identical
	// to Evaluate's.
	EvaluateWithSearch(ctx context.Context, mode model.Mode, role, domain, question, answer string) Evaluation
}

type evaluatorService struct {
	searchProvider search.Provider
}

func NewEvaluatorService(searchProvider search.Provider) EvaluatorService {
	return &evaluatorService{searchProvider: searchProvider}
}

// answerSignals are the derived facts the rubric scores from.
type answerSignals struct {
	wordCount  int
	hasNum     bool
	hasSTAR    bool
	hasTech    bool
	isVague    bool
	isShort    bool
	isDetailed bool
}

func deriveSignals(answer string) answerSignals {
	var sig answerSignals
	sig.wordCount = len(strings.Fields(answer))
	sig.hasNum = numericPattern.MatchString(answer)
	sig.hasSTAR = starPattern.MatchString(answer)
	sig.hasTech = techPattern.MatchString(answer)

	lower := strings.ToLower(answer)
	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			sig.isVague = true
			break
		}
	}
	// isShort stays an independent signal: a vague answer under 30 words is
	// still short for the purposes of the "Concise" strength.
	sig.isShort = sig.wordCount < shortAnswerWords
	sig.isDetailed = sig.wordCount > detailedAnswerWords && !sig.isVague
	return sig
}

func (s *evaluatorService) Evaluate(mode model.Mode, question, answer string) Evaluation {
	eval := scoreAnswer(mode, question, answer)
	eval.Reasoning = "Heuristic scoring based on answer quality and relevance."
	return eval
}

func (s *evaluatorService) EvaluateWithSearch(ctx context.Context, mode model.Mode, role, domain, question, answer string) Evaluation {
	query := fmt.Sprintf("how to evaluate %s interview answers for %s", strings.ToLower(string(mode)), question)
	results := s.searchProvider.Search(ctx, query, 3)

	eval := scoreAnswer(mode, question, answer)

	reasoning := "Evaluation based on answer structure, content, and relevance."
	for _, r := range results {
		snippet := r.Snippet
		if len(snippet) > 100 {
			snippet = snippet[:100]
		}
		reasoning += fmt.Sprintf(" According to %s: %s...", r.Title, snippet)
	}
	eval.Reasoning = reasoning
	return eval
}

// scoreAnswer applies the rubric. Tips and strengths accumulate in rule
// order; the score bonuses use boolean presence, not counts.
func scoreAnswer(mode model.Mode, question, answer string) Evaluation {
	sig := deriveSignals(answer)

	var tips, strengths []string

	switch {
	case sig.isVague:
		tips = append(tips, tipVagueSubstantial, tipVagueFindOut)
	case sig.isShort:
		tips = append(tips, tipShortElaborate, tipShortExamples)
	case sig.isDetailed:
		strengths = append(strengths, strengthDetailed)
	}

	if sig.wordCount > longAnswerWords {
		tips = append(tips, tipShorten)
	}
	if mode == model.ModeBehavioral && !sig.hasSTAR {
		tips = append(tips, tipUseSTAR)
	}
	if mode == model.ModeTechnical && !sig.hasTech {
		tips = append(tips, tipUseTechStructure)
	}
	if mode == model.ModeTechnical && !sig.hasNum {
		tips = append(tips, tipQuantify)
	}

	if sig.wordCount <= longAnswerWords && !sig.isShort {
		strengths = append(strengths, strengthConcise)
	}
	if sig.hasNum {
		strengths = append(strengths, strengthMetrics)
	}
	if (mode == model.ModeBehavioral && sig.hasSTAR) || (mode == model.ModeTechnical && sig.hasTech) {
		strengths = append(strengths, strengthStructure)
	}

	base := baseScoreDefault
	switch {
	case sig.isVague:
		base = baseScoreVague
	case sig.isShort:
		base = baseScoreShort
	case sig.isDetailed:
		base = baseScoreDetailed
	}

	score := base
	if len(strengths) > 0 {
		score += 1.0
	}
	if len(tips) > 0 {
		score -= 0.5
	}
	if sig.hasNum {
		score += 1.0
	}
	if sig.hasSTAR || sig.hasTech {
		score += 1.0
	}
	score = math.Round(clamp(score, 1, 10)*10) / 10

	var feedbackParts []string
	if len(strengths) > 0 {
		feedbackParts = append(feedbackParts, "Good aspects: "+strings.Join(strengths, ", ")+".")
	}
	if len(tips) > 0 {
		feedbackParts = append(feedbackParts, "Areas for improvement: "+strings.Join(tips, "; ")+".")
	}
	if suggestion, ok := topicSuggestionFor(question); ok {
		feedbackParts = append(feedbackParts, suggestion)
	}
	feedback := genericFeedback
	if len(feedbackParts) > 0 {
		feedback = strings.Join(feedbackParts, " ")
	}

	improvements := make([]string, 0, len(tips)+2)
	improvements = append(improvements, tips...)
	improvements = append(improvements, closerConcreteExamples, closerThoughtProcess)

	return Evaluation{
		Score:        score,
		Feedback:     feedback,
		Tags:         append([]string(nil), evaluationTags...),
		Improvements: improvements,
	}
}

func topicSuggestionFor(question string) (string, bool) {
	lower := strings.ToLower(question)
	for _, ts := range topicSuggestions {
		matched := true
		for _, kw := range ts.keywords {
			if !strings.Contains(lower, kw) {
				matched = false
				break
			}
		}
		if matched {
			return ts.suggestion, true
		}
	}
	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
