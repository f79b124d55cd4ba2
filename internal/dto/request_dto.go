package dto

// SetupRequest carries the interview settings confirmed on the setup step.
type SetupRequest struct {
	Role          string `json:"role" binding:"required"`
	Domain        string `json:"domain"`
	Mode          string `json:"mode" binding:"required,oneof=Technical Behavioral"`
	QuestionCount int    `json:"question_count" binding:"required,min=3,max=6"`
}

// AnswerRequest is one free-text answer to the current question. An empty
// answer is still a valid submission; the rubric scores it like any other.
type AnswerRequest struct {
	Answer string `json:"answer"`
}
