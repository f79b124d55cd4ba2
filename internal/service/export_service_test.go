package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lshigami/InterviewBuddy/internal/model"
)

func exportFixture() (*model.Summary, []model.AnswerRow) {
	overall := 7.5
	summary := &model.Summary{
		OverallScore: &overall,
		Strengths:    []string{"Strong technical knowledge"},
		Improvements: []string{"Work on time management"},
		Resources:    []string{"System Design Primer - GitHub"},
	}
	rows := []model.AnswerRow{
		{
			Question:     "Explain the virtual DOM and how it differs from the real DOM.",
			Answer:       "It is a lightweight in-memory tree.",
			Score:        7.5,
			Feedback:     "Good aspects: Concise.",
			Reasoning:    "Heuristic scoring based on answer quality and relevance.",
			Tags:         []string{"structure", "specificity", "relevance"},
			Improvements: []string{"Add concrete examples.", "Explain your thought process more clearly."},
			Topic:        "frontend",
			Difficulty:   "medium",
			Type:         "concept",
		},
		{
			Question:     "Given an array of numbers, return indices of two numbers that add up to a target.",
			Answer:       "(skipped)",
			Score:        0,
			Feedback:     "Question skipped.",
			Tags:         []string{"skipped"},
			Improvements: []string{"Attempt every question."},
		},
	}
	return summary, rows
}

func TestExportJSON(t *testing.T) {
	svc := NewExportService()
	summary, rows := exportFixture()

	data, err := svc.JSON(summary, rows)
	if err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}

	var payload struct {
		GeneratedAt string            `json:"generated_at"`
		Summary     *model.Summary    `json:"summary"`
		QA          []model.AnswerRow `json:"qa"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if !strings.HasSuffix(payload.GeneratedAt, "Z") {
		t.Errorf("Expected generated_at with trailing Z, got %q", payload.GeneratedAt)
	}
	if payload.Summary == nil || *payload.Summary.OverallScore != 7.5 {
		t.Errorf("Unexpected summary in export: %+v", payload.Summary)
	}
	if len(payload.QA) != 2 {
		t.Errorf("Expected 2 qa rows, got %d", len(payload.QA))
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService()
	_, rows := exportFixture()

	data, err := svc.CSV(rows)
	if err != nil {
		t.Fatalf("CSV export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	wantHeader := []string{"question", "answer", "score", "feedback", "reasoning", "tags", "improvements", "topic", "difficulty", "type"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("Header column %d: expected %q, got %q", i, col, records[0][i])
		}
	}
	if records[1][2] != "7.5" {
		t.Errorf("Expected score 7.5 in first row, got %q", records[1][2])
	}
	if records[2][1] != "(skipped)" {
		t.Errorf("Expected skipped answer in second row, got %q", records[2][1])
	}
	if records[1][6] != "Add concrete examples.; Explain your thought process more clearly." {
		t.Errorf("Unexpected improvements cell: %q", records[1][6])
	}
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService()
	if !svc.PDFAvailable() {
		t.Skip("PDF renderer unavailable in this build")
	}
	summary, rows := exportFixture()

	data, err := svc.PDF(summary, rows)
	if err != nil {
		t.Fatalf("PDF export failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Expected PDF magic bytes, got %q", data[:8])
	}
}

func TestExportPDFSubstitutesUnrepresentableCharacters(t *testing.T) {
	svc := NewExportService()
	if !svc.PDFAvailable() {
		t.Skip("PDF renderer unavailable in this build")
	}
	summary, rows := exportFixture()
	rows[0].Answer = "Diff the tree → re-render only changed nodes • fast"

	data, err := svc.PDF(summary, rows)
	if err != nil {
		t.Fatalf("PDF export must substitute, not fail: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty PDF output")
	}
}
