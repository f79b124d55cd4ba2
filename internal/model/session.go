package model

// Step is the interview state machine phase.
type Step string

const (
	StepSetup       Step = "setup"
	StepInterviewer Step = "interviewer"
	StepInterview   Step = "interview"
	StepSummary     Step = "summary"
)

// AnswerRow is created exactly once per answered or skipped question and is
// never mutated afterwards. Rows accumulate strictly in question order.
type AnswerRow struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Reasoning    string   `json:"reasoning,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Topic        string   `json:"topic,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Type         string   `json:"type,omitempty"`
}

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"` // "assistant" or "user"
	Content string `json:"content"`
}

// Session holds all state for one interview. There is exactly one logical
// writer per session (the interacting user), so fields are mutated without
// per-session locking; the repository only guards its own map.
type Session struct {
	ID            string      `json:"id"`
	Step          Step        `json:"step"`
	Role          string      `json:"role"`
	Domain        string      `json:"domain,omitempty"`
	Mode          Mode        `json:"mode"`
	QuestionCount int         `json:"question_count"`
	Questions     []Question  `json:"questions,omitempty"`
	CurrentIndex  int         `json:"current_index"`
	Rows          []AnswerRow `json:"rows,omitempty"`
	Transcript    []Message   `json:"transcript,omitempty"`
	Summary       *Summary    `json:"summary,omitempty"` // computed once, cached until reset
}

// CurrentQuestion returns the question at the cursor, or nil when the cursor
// is out of range (including the empty-question-list case).
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}
