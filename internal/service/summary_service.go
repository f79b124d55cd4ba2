package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/search"
)

// Score banding thresholds.
const (
	strongBandFloor   = 7.0
	adequateBandFloor = 5.0
)

var (
	strongStrengths      = []string{"Strong technical knowledge", "Good communication skills", "Well-structured answers"}
	strongImprovements   = []string{"Work on time management", "Include more specific examples"}
	adequateStrengths    = []string{"Adequate knowledge base", "Reasonable communication"}
	adequateImprovements = []string{"Practice more interview questions", "Work on answer structure", "Include metrics in responses"}
	weakStrengths        = []string{"Willingness to learn", "Basic understanding of concepts"}
	weakImprovements     = []string{"Study fundamental concepts", "Practice with mock interviews", "Work on communication skills"}

	defaultResources = []string{
		"System Design Primer - GitHub",
		"STAR Method Guide - Coursera",
		"Cracking the Coding Interview - McDowell",
	}
)

type SummaryService interface {
	// Summarize derives the session summary. Callers cache the result on the
	// session; Summarize itself is stateless.
	Summarize(ctx context.Context, session *model.Session) *model.Summary
}

type summaryService struct {
	searchProvider search.Provider
}

func NewSummaryService(searchProvider search.Provider) SummaryService {
	return &summaryService{searchProvider: searchProvider}
}

func (s *summaryService) Summarize(ctx context.Context, session *model.Session) *model.Summary {
	resources := s.lookupResources(ctx, session)

	// Skipped questions carry a numeric zero and count toward the mean.
	var sum float64
	for _, row := range session.Rows {
		sum += row.Score
	}

	summary := &model.Summary{Resources: resources}
	avg := 0.0
	if len(session.Rows) > 0 {
		avg = sum / float64(len(session.Rows))
		rounded := math.Round(avg*10) / 10
		summary.OverallScore = &rounded
	}

	switch {
	case avg >= strongBandFloor:
		summary.Strengths = append([]string(nil), strongStrengths...)
		summary.Improvements = append([]string(nil), strongImprovements...)
	case avg >= adequateBandFloor:
		summary.Strengths = append([]string(nil), adequateStrengths...)
		summary.Improvements = append([]string(nil), adequateImprovements...)
	default:
		summary.Strengths = append([]string(nil), weakStrengths...)
		summary.Improvements = append([]string(nil), weakImprovements...)
	}
	return summary
}

func (s *summaryService) lookupResources(ctx context.Context, session *model.Session) []string {
	query := fmt.Sprintf("how to improve %s interview skills for %s", strings.ToLower(string(session.Mode)), session.Role)
	if session.Domain != "" {
		query += " " + session.Domain
	}

	var resources []string
	for _, result := range s.searchProvider.Search(ctx, query, 3) {
		resources = append(resources, fmt.Sprintf("%s - %s", result.Title, result.URL))
	}
	if len(resources) == 0 {
		resources = append(resources, defaultResources...)
	}
	return resources
}
