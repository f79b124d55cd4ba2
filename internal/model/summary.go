package model

// Summary is computed once per session by the aggregator and cached on the
// session until reset. OverallScore is nil when there are no answer rows.
type Summary struct {
	OverallScore *float64 `json:"overall_score,omitempty"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Resources    []string `json:"resources"`
}
