package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidTransition signals an operation not allowed in the session's
	// current step.
	ErrInvalidTransition = errors.New("operation not allowed in current step")
	// ErrNoCurrentQuestion signals an answer or skip with no question under
	// the cursor (e.g. an empty generated set).
	ErrNoCurrentQuestion = errors.New("no current question")
)

// ValidationError marks bad setup input so controllers can answer 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var allowedRoles = []string{
	"Software Engineer", "Product Manager", "Data Analyst", "Data Scientist", "DevOps Engineer",
}

const (
	minQuestionCount = 3
	maxQuestionCount = 6

	defaultRole          = "Software Engineer"
	defaultQuestionCount = 3

	completionMessage = "Interview Complete! Open the summary below."

	skippedAnswer       = "(skipped)"
	skippedFeedback     = "Question skipped."
	skippedImprovement  = "Attempt every question."
	skippedTag          = "skipped"
	technicalRubric     = "Evaluate technical accuracy, clarity, completeness and trade-offs. Focus on core concepts, steps/algorithms, edge-cases & complexity, and communication."
	behavioralRubric    = "Evaluate using STAR: Situation, Task, Action, Result - check clarity, ownership, impact, and reflection."
	technicalPersonaID  = "Alex Rivera (Senior Engineer)"
	behavioralPersonaID = "Jordan Lee (People Manager)"
)

// InterviewerPreview is the display-only persona shown between setup and the
// interview itself.
type InterviewerPreview struct {
	Interviewer string   `json:"interviewer"`
	Mode        model.Mode `json:"mode"`
	Role        string   `json:"role"`
	Domain      string   `json:"domain,omitempty"`
	GroundRules []string `json:"ground_rules"`
	Rubric      string   `json:"rubric"`
}

// AnswerOutcome is what one answer or skip turn produces.
type AnswerOutcome struct {
	Evaluation   *Evaluation     `json:"evaluation,omitempty"`
	Row          model.AnswerRow `json:"row"`
	NextQuestion *model.Question `json:"next_question,omitempty"`
	Completed    bool            `json:"completed"`
}

type SessionService interface {
	Create() (*model.Session, error)
	Get(id string) (*model.Session, error)
	Setup(id, role, domain string, mode model.Mode, questionCount int) (*model.Session, error)
	InterviewerPreview(id string) (*InterviewerPreview, error)
	Back(id string) (*model.Session, error)
	Start(ctx context.Context, id string) (*model.Session, error)
	Answer(ctx context.Context, id, answer string) (*AnswerOutcome, error)
	Skip(id string) (*AnswerOutcome, error)
	End(id string) (*model.Session, error)
	Summary(ctx context.Context, id string) (*model.Summary, error)
	Reset(id string) (*model.Session, error)
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	questionSvc  QuestionService
	evaluatorSvc EvaluatorService
	summarySvc   SummaryService
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	questionSvc QuestionService,
	evaluatorSvc EvaluatorService,
	summarySvc SummaryService,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		questionSvc:  questionSvc,
		evaluatorSvc: evaluatorSvc,
		summarySvc:   summarySvc,
	}
}

func freshDefaults(session *model.Session) {
	session.Step = model.StepSetup
	session.Role = defaultRole
	session.Domain = ""
	session.Mode = model.ModeTechnical
	session.QuestionCount = defaultQuestionCount
	session.Questions = nil
	session.CurrentIndex = 0
	session.Rows = nil
	session.Transcript = nil
	session.Summary = nil
}

func (s *sessionService) Create() (*model.Session, error) {
	session := &model.Session{ID: uuid.NewString()}
	freshDefaults(session)
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, fmt.Errorf("saving new session: %w", err)
	}
	log.Info().Str("session_id", session.ID).Msg("Session created")
	return session, nil
}

func (s *sessionService) Get(id string) (*model.Session, error) {
	return s.sessionRepo.FindByID(id)
}

func (s *sessionService) Setup(id, role, domain string, mode model.Mode, questionCount int) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepSetup {
		return nil, ErrInvalidTransition
	}
	if !isAllowedRole(role) {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown role %q", role)}
	}
	if mode != model.ModeTechnical && mode != model.ModeBehavioral {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown mode %q", mode)}
	}
	if questionCount < minQuestionCount || questionCount > maxQuestionCount {
		return nil, &ValidationError{Reason: fmt.Sprintf("question count must be between %d and %d", minQuestionCount, maxQuestionCount)}
	}

	session.Role = role
	session.Domain = domain
	session.Mode = mode
	session.QuestionCount = questionCount
	session.Step = model.StepInterviewer
	return session, nil
}

func (s *sessionService) InterviewerPreview(id string) (*InterviewerPreview, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterviewer {
		return nil, ErrInvalidTransition
	}

	preview := &InterviewerPreview{
		Mode:   session.Mode,
		Role:   session.Role,
		Domain: session.Domain,
	}
	if session.Mode == model.ModeBehavioral {
		preview.Interviewer = behavioralPersonaID
		preview.GroundRules = []string{
			"Keep answers under 90s",
			"Use STAR: Situation -> Task -> Action -> Result",
		}
		preview.Rubric = behavioralRubric
	} else {
		preview.Interviewer = technicalPersonaID
		preview.GroundRules = []string{
			"Keep answers under 90s",
			"Focus on decisions, trade-offs and measurable outcomes",
		}
		preview.Rubric = technicalRubric
	}
	return preview, nil
}

func (s *sessionService) Back(id string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterviewer {
		return nil, ErrInvalidTransition
	}
	session.Step = model.StepSetup
	return session, nil
}

func (s *sessionService) Start(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterviewer {
		return nil, ErrInvalidTransition
	}

	questions := s.questionSvc.Generate(ctx, session.Role, session.Domain, session.Mode, session.QuestionCount)
	questions = padQuestions(questions, session.QuestionCount)

	session.Questions = questions
	session.CurrentIndex = 0
	session.Rows = nil
	session.Transcript = nil
	session.Summary = nil
	session.Step = model.StepInterview

	if q := session.CurrentQuestion(); q != nil {
		session.Transcript = append(session.Transcript, model.Message{Role: "assistant", Content: q.Text})
	} else {
		log.Warn().Str("session_id", session.ID).Msg("Interview started with an empty question list")
	}
	return session, nil
}

// padQuestions repeats entries from the head of the list until length n.
// Duplicate questions are accepted; an empty list stays empty.
func padQuestions(questions []model.Question, n int) []model.Question {
	if len(questions) == 0 || len(questions) >= n {
		return questions
	}
	padded := append([]model.Question(nil), questions...)
	for i := 0; len(padded) < n; i++ {
		padded = append(padded, questions[i%len(questions)])
	}
	return padded
}

func (s *sessionService) Answer(ctx context.Context, id, answer string) (*AnswerOutcome, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterview {
		return nil, ErrInvalidTransition
	}
	q := session.CurrentQuestion()
	if q == nil {
		return nil, ErrNoCurrentQuestion
	}

	session.Transcript = append(session.Transcript, model.Message{Role: "user", Content: answer})

	eval := s.evaluatorSvc.EvaluateWithSearch(ctx, session.Mode, session.Role, session.Domain, q.Text, answer)
	row := model.AnswerRow{
		Question:     q.Text,
		Answer:       answer,
		Score:        eval.Score,
		Feedback:     eval.Feedback,
		Reasoning:    eval.Reasoning,
		Tags:         eval.Tags,
		Improvements: eval.Improvements,
		Topic:        q.Topic,
		Difficulty:   q.Difficulty,
		Type:         q.Type,
	}
	session.Rows = append(session.Rows, row)
	session.CurrentIndex++

	return s.advance(session, &eval, row), nil
}

func (s *sessionService) Skip(id string) (*AnswerOutcome, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterview {
		return nil, ErrInvalidTransition
	}
	q := session.CurrentQuestion()
	if q == nil {
		return nil, ErrNoCurrentQuestion
	}

	row := model.AnswerRow{
		Question:     q.Text,
		Answer:       skippedAnswer,
		Score:        0,
		Feedback:     skippedFeedback,
		Tags:         []string{skippedTag},
		Improvements: []string{skippedImprovement},
		Topic:        q.Topic,
		Difficulty:   q.Difficulty,
		Type:         q.Type,
	}
	session.Rows = append(session.Rows, row)
	session.CurrentIndex++

	return s.advance(session, nil, row), nil
}

// advance appends the next question to the transcript or completes the
// interview when the cursor exhausts the list.
func (s *sessionService) advance(session *model.Session, eval *Evaluation, row model.AnswerRow) *AnswerOutcome {
	outcome := &AnswerOutcome{Evaluation: eval, Row: row}
	if next := session.CurrentQuestion(); next != nil {
		session.Transcript = append(session.Transcript, model.Message{Role: "assistant", Content: next.Text})
		outcome.NextQuestion = next
		return outcome
	}
	session.Transcript = append(session.Transcript, model.Message{Role: "assistant", Content: completionMessage})
	session.Step = model.StepSummary
	outcome.Completed = true
	return outcome
}

func (s *sessionService) End(id string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepInterview {
		return nil, ErrInvalidTransition
	}
	// Unanswered questions are not penalized; existing rows stand as-is.
	session.Step = model.StepSummary
	return session, nil
}

func (s *sessionService) Summary(ctx context.Context, id string) (*model.Summary, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepSummary {
		return nil, ErrInvalidTransition
	}
	if session.Summary != nil {
		return session.Summary, nil
	}
	summary := s.summarySvc.Summarize(ctx, session)
	session.Summary = summary
	return summary, nil
}

func (s *sessionService) Reset(id string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepSummary {
		return nil, ErrInvalidTransition
	}
	freshDefaults(session)
	log.Info().Str("session_id", session.ID).Msg("Session reset")
	return session, nil
}

func isAllowedRole(role string) bool {
	for _, r := range allowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
