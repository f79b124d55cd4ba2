package service

import (
	"context"
	"testing"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/search"
)

func sessionWithScores(scores ...float64) *model.Session {
	s := &model.Session{Role: "Software Engineer", Mode: model.ModeTechnical}
	for _, score := range scores {
		s.Rows = append(s.Rows, model.AnswerRow{Score: score})
	}
	return s
}

func TestSummarizeBanding(t *testing.T) {
	tests := []struct {
		name          string
		scores        []float64
		wantOverall   float64
		wantStrength  string
		wantImproveLn int
	}{
		{"strong band", []float64{8, 7.5, 9}, 8.2, "Strong technical knowledge", 2},
		{"adequate band", []float64{5, 6, 5.5}, 5.5, "Adequate knowledge base", 3},
		{"developing band", []float64{2, 3, 4}, 3.0, "Willingness to learn", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSummaryService(&stubProvider{})
			summary := svc.Summarize(context.Background(), sessionWithScores(tt.scores...))
			if summary.OverallScore == nil || *summary.OverallScore != tt.wantOverall {
				t.Fatalf("Expected overall %v, got %v", tt.wantOverall, summary.OverallScore)
			}
			if summary.Strengths[0] != tt.wantStrength {
				t.Errorf("Expected strength %q, got %q", tt.wantStrength, summary.Strengths[0])
			}
			if len(summary.Improvements) != tt.wantImproveLn {
				t.Errorf("Expected %d improvements, got %d", tt.wantImproveLn, len(summary.Improvements))
			}
		})
	}
}

func TestSummarizeSkipZerosCountTowardMean(t *testing.T) {
	svc := NewSummaryService(&stubProvider{})
	summary := svc.Summarize(context.Background(), sessionWithScores(8, 0, 8))
	if summary.OverallScore == nil || *summary.OverallScore != 5.3 {
		t.Errorf("Expected 5.3 with the skip zero counted, got %v", summary.OverallScore)
	}
}

func TestSummarizeNoRows(t *testing.T) {
	svc := NewSummaryService(&stubProvider{})
	summary := svc.Summarize(context.Background(), sessionWithScores())
	if summary.OverallScore != nil {
		t.Errorf("Expected nil overall score without rows, got %v", *summary.OverallScore)
	}
	// Zero average lands in the developing band.
	if summary.Strengths[0] != "Willingness to learn" {
		t.Errorf("Expected developing band, got %v", summary.Strengths)
	}
}

func TestSummarizeResourcesFromSearch(t *testing.T) {
	provider := &stubProvider{results: []search.Result{
		{Title: "Interview Guide", Snippet: "...", URL: "https://example.com/guide"},
	}}
	svc := NewSummaryService(provider)

	session := sessionWithScores(6)
	session.Domain = "frontend"
	summary := svc.Summarize(context.Background(), session)

	if len(summary.Resources) != 1 || summary.Resources[0] != "Interview Guide - https://example.com/guide" {
		t.Errorf("Unexpected resources: %v", summary.Resources)
	}
	want := "how to improve technical interview skills for Software Engineer frontend"
	if len(provider.queries) != 1 || provider.queries[0] != want {
		t.Errorf("Expected query %q, got %v", want, provider.queries)
	}
}

func TestSummarizeDefaultResources(t *testing.T) {
	svc := NewSummaryService(&stubProvider{})
	summary := svc.Summarize(context.Background(), sessionWithScores(6))
	if len(summary.Resources) != 3 || summary.Resources[0] != "System Design Primer - GitHub" {
		t.Errorf("Expected the three default resources, got %v", summary.Resources)
	}
}
