package service

import "regexp"

// Signal patterns for the answer evaluator, kept as an explicit table so the
// rubric is independently testable and swappable without touching the state
// machine.

var (
	numericPattern = regexp.MustCompile(`(?i)\b\d+(\.\d+)?%?\b|ms|sec|minute|hour|users|requests|throughput|latency|revenue|cost`)
	starPattern    = regexp.MustCompile(`(?i)(situation|task|action|result|star)`)
	techPattern    = regexp.MustCompile(`(?i)(problem|approach|design|trade-?off|decision|result|outcome)`)
)

// vaguePhrases is checked against the lowercased answer. The capitalized
// entries can never match a lowercased string; the list is preserved exactly
// as shipped rather than corrected.
var vaguePhrases = []string{
	"idk", "i don't know", "not sure", "not certain", "tbh",
	"I don't know", "IDK", "No idea", "Uhm", "Yes",
}

const (
	tipVagueSubstantial = "Try to provide a more substantial answer even if you're unsure."
	tipVagueFindOut     = "Mention what you would do to find the answer if you don't know it."
	tipShortElaborate   = "Elaborate more on your answer with specific details."
	tipShortExamples    = "Provide examples or experiences to support your points."
	tipShorten          = "Shorten to ~90s; headline first."
	tipUseSTAR          = "Use STAR: Situation -> Task -> Action -> Result."
	tipUseTechStructure = "Use Problem -> Options/Trade-offs -> Decision -> Result."
	tipQuantify         = "Quantify impact or scale with metrics."

	strengthDetailed  = "Provided a detailed response"
	strengthConcise   = "Concise"
	strengthMetrics   = "Uses metrics"
	strengthStructure = "Clear structure"

	closerConcreteExamples = "Add concrete examples."
	closerThoughtProcess   = "Explain your thought process more clearly."

	genericFeedback = "Try to provide more specific examples and details in your answer."
)

// topicSuggestion maps fixed question-topic patterns to a canned addendum.
// Checked in order; only the first match is appended.
type topicSuggestion struct {
	keywords   []string
	suggestion string
}

var topicSuggestions = []topicSuggestion{
	{
		keywords:   []string{"performance", "react"},
		suggestion: "For React performance, consider discussing: code splitting, memoization, virtualization, bundle optimization, or lazy loading.",
	},
	{
		keywords:   []string{"database", "index"},
		suggestion: "For database indexing, consider discussing: B-tree structure, covering indexes, query optimization, or index maintenance.",
	},
}

var evaluationTags = []string{"structure", "specificity", "relevance"}

// Word-count thresholds and base scores of the rubric.
const (
	shortAnswerWords    = 30
	detailedAnswerWords = 80
	longAnswerWords     = 140

	baseScoreVague    = 3.0
	baseScoreShort    = 4.0
	baseScoreDetailed = 7.5
	baseScoreDefault  = 6.0
)
