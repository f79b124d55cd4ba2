package dto

// QuestionDTO mirrors model.Question for API responses.
type QuestionDTO struct {
	Text       string `json:"text"`
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Type       string `json:"type,omitempty"`
	Mode       string `json:"mode"`
}

// MessageDTO is one transcript entry.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnswerRowDTO is one scored (or skipped) question in the session history.
type AnswerRowDTO struct {
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

// SummaryDTO is the aggregated session outcome.
type SummaryDTO struct {
	OverallScore *float64 `json:"overall_score,omitempty"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Resources    []string `json:"resources"`
}

// SessionDTO is the full session snapshot returned by GET /sessions/:id.
type SessionDTO struct {
	ID              string         `json:"id"`
	Step            string         `json:"step"`
	Role            string         `json:"role"`
	Domain          string         `json:"domain,omitempty"`
	Mode            string         `json:"mode"`
	QuestionCount   int            `json:"question_count"`
	CurrentIndex    int            `json:"current_index"`
	CurrentQuestion *QuestionDTO   `json:"current_question,omitempty"`
	Questions       []QuestionDTO  `json:"questions,omitempty"`
	Rows            []AnswerRowDTO `json:"rows,omitempty"`
	Transcript      []MessageDTO   `json:"transcript,omitempty"`
	Summary         *SummaryDTO    `json:"summary,omitempty"`
}

// AnswerOutcomeDTO is what one answer or skip turn returns.
type AnswerOutcomeDTO struct {
	Evaluation   *EvaluationDTO `json:"evaluation,omitempty"`
	Row          AnswerRowDTO   `json:"row"`
	NextQuestion *QuestionDTO   `json:"next_question,omitempty"`
	Completed    bool           `json:"completed"`
}

// EvaluationDTO is the rubric output for a single answer.
type EvaluationDTO struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Reasoning    string   `json:"reasoning"`
	Tags         []string `json:"tags"`
	Improvements []string `json:"improvements"`
}

// InterviewerPreviewDTO is the display-only persona preview.
type InterviewerPreviewDTO struct {
	Interviewer string   `json:"interviewer"`
	Mode        string   `json:"mode"`
	Role        string   `json:"role"`
	Domain      string   `json:"domain,omitempty"`
	GroundRules []string `json:"ground_rules"`
	Rubric      string   `json:"rubric"`
}

// ResearchDTO wraps the search-insight digest.
type ResearchDTO struct {
	Query  string `json:"query"`
	Digest string `json:"digest"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
