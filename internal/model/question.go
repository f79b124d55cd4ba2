package model

// Mode selects the interview track. It decides which fallback bank is used
// and which structure signals the evaluator rewards.
type Mode string

const (
	ModeTechnical  Mode = "Technical"
	ModeBehavioral Mode = "Behavioral"
)

// Question is immutable once issued to a session; the state machine keeps
// references to questions, it never mutates them.
type Question struct {
	Text       string `json:"text"`
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"` // "easy", "medium", "hard"
	Type       string `json:"type,omitempty"`       // free-form tag, e.g. "concept", "coding", "behavioral"
	Mode       Mode   `json:"mode"`
}
