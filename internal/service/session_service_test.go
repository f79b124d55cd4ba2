package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/repository"
)

func newTestSessionService(provider *stubProvider) SessionService {
	repo := repository.NewSessionRepository()
	return NewSessionService(
		repo,
		NewQuestionService(provider),
		NewEvaluatorService(provider),
		NewSummaryService(provider),
	)
}

func setupInterview(t *testing.T, svc SessionService) *model.Session {
	t.Helper()
	session, err := svc.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Setup(session.ID, "Software Engineer", "frontend", model.ModeTechnical, 3); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := svc.Start(context.Background(), session.ID); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return session
}

func TestCreateHasFreshDefaults(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session, err := svc.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.Step != model.StepSetup || session.Role != "Software Engineer" ||
		session.Mode != model.ModeTechnical || session.QuestionCount != 3 {
		t.Errorf("Unexpected defaults: %+v", session)
	}
	if session.ID == "" {
		t.Error("Expected a session ID")
	}
}

func TestSetupValidation(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session, _ := svc.Create()

	var validationErr *ValidationError
	if _, err := svc.Setup(session.ID, "Astronaut", "", model.ModeTechnical, 3); !errors.As(err, &validationErr) {
		t.Errorf("Expected validation error for unknown role, got %v", err)
	}
	if _, err := svc.Setup(session.ID, "Software Engineer", "", "Casual", 3); !errors.As(err, &validationErr) {
		t.Errorf("Expected validation error for unknown mode, got %v", err)
	}
	if _, err := svc.Setup(session.ID, "Software Engineer", "", model.ModeTechnical, 7); !errors.As(err, &validationErr) {
		t.Errorf("Expected validation error for out-of-range count, got %v", err)
	}
	if _, err := svc.Setup(session.ID, "Software Engineer", "", model.ModeTechnical, 2); !errors.As(err, &validationErr) {
		t.Errorf("Expected validation error for count below minimum, got %v", err)
	}
}

func TestInterviewerPreviewPersonas(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})

	session, _ := svc.Create()
	if _, err := svc.InterviewerPreview(session.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected invalid transition before setup confirmation, got %v", err)
	}

	if _, err := svc.Setup(session.ID, "Software Engineer", "", model.ModeTechnical, 3); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	preview, err := svc.InterviewerPreview(session.ID)
	if err != nil {
		t.Fatalf("InterviewerPreview failed: %v", err)
	}
	if preview.Interviewer != "Alex Rivera (Senior Engineer)" {
		t.Errorf("Expected technical persona, got %q", preview.Interviewer)
	}

	behavioral, _ := svc.Create()
	if _, err := svc.Setup(behavioral.ID, "Product Manager", "", model.ModeBehavioral, 3); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	preview, err = svc.InterviewerPreview(behavioral.ID)
	if err != nil {
		t.Fatalf("InterviewerPreview failed: %v", err)
	}
	if preview.Interviewer != "Jordan Lee (People Manager)" {
		t.Errorf("Expected behavioral persona, got %q", preview.Interviewer)
	}
}

func TestBackReturnsToSetup(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session, _ := svc.Create()
	if _, err := svc.Back(session.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Back from setup must be rejected, got %v", err)
	}
	if _, err := svc.Setup(session.ID, "Software Engineer", "", model.ModeTechnical, 3); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	updated, err := svc.Back(session.ID)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if updated.Step != model.StepSetup {
		t.Errorf("Expected setup step after back, got %s", updated.Step)
	}
}

func TestStartGeneratesAndAsksFirstQuestion(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)

	if session.Step != model.StepInterview {
		t.Fatalf("Expected interview step, got %s", session.Step)
	}
	// Bank fallback: exactly the 3 frontend questions.
	if len(session.Questions) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(session.Questions))
	}
	if len(session.Transcript) != 1 || session.Transcript[0].Role != "assistant" {
		t.Fatalf("Expected first question in transcript, got %v", session.Transcript)
	}
	if session.Transcript[0].Content != session.Questions[0].Text {
		t.Errorf("Transcript opener mismatch: %q", session.Transcript[0].Content)
	}
}

func TestStartPadsShortGeneration(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session, _ := svc.Create()
	if _, err := svc.Setup(session.ID, "Software Engineer", "frontend", model.ModeTechnical, 5); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := svc.Start(context.Background(), session.ID); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	// Bank has 3 entries; padding repeats from the head.
	if len(session.Questions) != 5 {
		t.Fatalf("Expected 5 padded questions, got %d", len(session.Questions))
	}
	if session.Questions[3].Text != session.Questions[0].Text || session.Questions[4].Text != session.Questions[1].Text {
		t.Errorf("Expected padding to repeat from the start of the list")
	}
}

func TestAnswerFlowThroughSummary(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)
	ctx := context.Background()

	outcome, err := svc.Answer(ctx, session.ID, "The virtual DOM is a lightweight tree; diffing avoids full re-renders.")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if outcome.Completed || outcome.NextQuestion == nil {
		t.Fatalf("Expected a next question after first answer, got %+v", outcome)
	}
	if outcome.Evaluation == nil || outcome.Evaluation.Score < 1 || outcome.Evaluation.Score > 10 {
		t.Fatalf("Expected bounded evaluation, got %+v", outcome.Evaluation)
	}

	if _, err := svc.Skip(session.ID); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	final, err := svc.Answer(ctx, session.ID, "Code splitting and memoization cut our bundle by 40%.")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !final.Completed {
		t.Fatalf("Expected completion after last answer, got %+v", final)
	}
	if session.Step != model.StepSummary {
		t.Errorf("Expected summary step, got %s", session.Step)
	}
	if len(session.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(session.Rows))
	}
	last := session.Transcript[len(session.Transcript)-1]
	if last.Content != "Interview Complete! Open the summary below." {
		t.Errorf("Expected completion message, got %q", last.Content)
	}

	// Rows accumulate in question order and never exceed the question count.
	for i, row := range session.Rows {
		if row.Question != session.Questions[i].Text {
			t.Errorf("Row %d out of order: %q", i, row.Question)
		}
	}
}

func TestSkipRowShape(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)

	outcome, err := svc.Skip(session.ID)
	if err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	row := outcome.Row
	if row.Answer != "(skipped)" || row.Score != 0 || row.Feedback != "Question skipped." {
		t.Errorf("Unexpected skip row: %+v", row)
	}
	if len(row.Tags) != 1 || row.Tags[0] != "skipped" {
		t.Errorf("Expected skipped tag, got %v", row.Tags)
	}
	if len(row.Improvements) != 1 || row.Improvements[0] != "Attempt every question." {
		t.Errorf("Expected skip improvement, got %v", row.Improvements)
	}
	if outcome.Evaluation != nil {
		t.Error("Skip must not run the evaluator")
	}
	if session.CurrentIndex != 1 {
		t.Errorf("Expected cursor advanced to 1, got %d", session.CurrentIndex)
	}
}

func TestEndSkipsRemainingWithoutPenalty(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)

	if _, err := svc.Answer(context.Background(), session.ID, "A reasonable answer with a design decision and 10% improvement in latency."); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if _, err := svc.End(session.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if session.Step != model.StepSummary {
		t.Errorf("Expected summary step after end, got %s", session.Step)
	}
	if len(session.Rows) != 1 {
		t.Errorf("End must not add rows for unanswered questions, got %d rows", len(session.Rows))
	}
}

func TestEmptyQuestionListNeverPanics(t *testing.T) {
	provider := &stubProvider{}
	repo := repository.NewSessionRepository()
	svc := NewSessionService(repo, emptyQuestionService{}, NewEvaluatorService(provider), NewSummaryService(provider))

	session, _ := svc.Create()
	if _, err := svc.Setup(session.ID, "Software Engineer", "", model.ModeTechnical, 3); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := svc.Start(context.Background(), session.ID); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if q := session.CurrentQuestion(); q != nil {
		t.Fatalf("Expected no current question, got %+v", q)
	}
	if _, err := svc.Answer(context.Background(), session.ID, "anything"); !errors.Is(err, ErrNoCurrentQuestion) {
		t.Errorf("Expected ErrNoCurrentQuestion on answer, got %v", err)
	}
	if _, err := svc.Skip(session.ID); !errors.Is(err, ErrNoCurrentQuestion) {
		t.Errorf("Expected ErrNoCurrentQuestion on skip, got %v", err)
	}
	if _, err := svc.End(session.ID); err != nil {
		t.Errorf("End must still work with no questions: %v", err)
	}
}

func TestSummaryComputedOnceAndCached(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestSessionService(provider)
	session := setupInterview(t, svc)

	if _, err := svc.End(session.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	callsBefore := provider.calls
	first, err := svc.Summary(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	second, err := svc.Summary(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Second summary failed: %v", err)
	}
	if first != second {
		t.Error("Expected cached summary instance on second call")
	}
	if provider.calls != callsBefore+1 {
		t.Errorf("Summary recomputed: %d extra search calls", provider.calls-callsBefore)
	}
}

func TestSummaryRequiresSummaryStep(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)

	if _, err := svc.Summary(context.Background(), session.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected invalid transition during interview, got %v", err)
	}
}

func TestResetOnlyFromSummary(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	session := setupInterview(t, svc)

	if _, err := svc.Reset(session.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected reset rejection during interview, got %v", err)
	}

	if _, err := svc.End(session.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	reset, err := svc.Reset(session.ID)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if reset.Step != model.StepSetup || len(reset.Questions) != 0 || len(reset.Rows) != 0 ||
		len(reset.Transcript) != 0 || reset.Summary != nil {
		t.Errorf("Expected fresh defaults after reset, got %+v", reset)
	}
	if reset.ID != session.ID {
		t.Error("Reset must keep the session ID")
	}
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	svc := newTestSessionService(&stubProvider{})
	if _, err := svc.Get("nope"); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
