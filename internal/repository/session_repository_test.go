package repository

import (
	"errors"
	"testing"

	"github.com/lshigami/InterviewBuddy/internal/model"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	session := &model.Session{ID: "abc", Step: model.StepSetup}
	if err := repo.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	found, err := repo.FindByID("abc")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found != session {
		t.Error("Expected the same session instance back")
	}

	if err := repo.Delete("abc"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID("abc"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionRepositoryRejectsEmptyID(t *testing.T) {
	repo := NewSessionRepository()
	if err := repo.Save(&model.Session{}); err == nil {
		t.Error("Expected error saving a session without an ID")
	}
	if err := repo.Save(nil); err == nil {
		t.Error("Expected error saving a nil session")
	}
}

func TestSessionRepositoryUnknownID(t *testing.T) {
	repo := NewSessionRepository()
	if _, err := repo.FindByID("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on delete, got %v", err)
	}
}
