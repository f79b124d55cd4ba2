package questionbank

import (
	"strings"

	"github.com/lshigami/InterviewBuddy/internal/model"
)

// TechKey addresses a technical fallback set by role and lowercased domain.
type TechKey struct {
	Role   string
	Domain string
}

var defaultTechKey = TechKey{Role: "Software Engineer", Domain: "frontend"}

const defaultBehavioralRole = "Software Engineer"

var technicalBank = map[TechKey][]model.Question{
	{Role: "Software Engineer", Domain: "frontend"}: {
		{Text: "Explain the virtual DOM and how it differs from the real DOM.", Topic: "frontend", Difficulty: "medium", Type: "concept", Mode: model.ModeTechnical},
		{Text: "Given an array of numbers, return indices of two numbers that add up to a target.", Topic: "algorithms", Difficulty: "easy", Type: "coding", Mode: model.ModeTechnical},
		{Text: "How would you improve the performance of a large React application?", Topic: "performance", Difficulty: "medium", Type: "design", Mode: model.ModeTechnical},
	},
	{Role: "Software Engineer", Domain: "backend"}: {
		{Text: "Describe database indexing. When does an index help, and when might it hurt?", Topic: "databases", Difficulty: "medium", Type: "concept", Mode: model.ModeTechnical},
		{Text: "Design a rate limiter for an API. Outline data structures and trade-offs.", Topic: "system design", Difficulty: "medium", Type: "design", Mode: model.ModeTechnical},
		{Text: "Given a log stream, find the most frequent 10 endpoints in the last 5 minutes.", Topic: "stream/algorithms", Difficulty: "hard", Type: "algorithms", Mode: model.ModeTechnical},
	},
	{Role: "Data Analyst", Domain: "ml"}: {
		{Text: "Explain bias-variance tradeoff with an example.", Topic: "ml", Difficulty: "medium", Type: "concept", Mode: model.ModeTechnical},
		{Text: "You have missing values in a dataset with categorical and numeric features - what strategies would you use?", Topic: "data prep", Difficulty: "easy", Type: "practical", Mode: model.ModeTechnical},
		{Text: "How would you evaluate the impact of a new feature in a product?", Topic: "experimentation", Difficulty: "medium", Type: "analysis", Mode: model.ModeTechnical},
	},
}

var behavioralBank = map[string][]model.Question{
	"Software Engineer": {
		{Text: "Tell me about a time you had to quickly learn a new technology to deliver a project.", Topic: "learning", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Describe a situation where you had a conflict with a teammate. How did you handle it?", Topic: "conflict", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Give an example of a time you led without authority.", Topic: "leadership", Type: "behavioral", Mode: model.ModeBehavioral},
	},
	"Product Manager": {
		{Text: "Tell me about a time you had to prioritize conflicting stakeholder requests.", Topic: "prioritization", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Describe a product decision you made that didn't work out. What did you learn?", Topic: "learning", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Give an example of influencing a team without direct authority.", Topic: "influence", Type: "behavioral", Mode: model.ModeBehavioral},
	},
	"Data Analyst": {
		{Text: "Tell me about a time your analysis changed someone's mind.", Topic: "impact", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Describe a project where you had unclear requirements. What did you do?", Topic: "ambiguity", Type: "behavioral", Mode: model.ModeBehavioral},
		{Text: "Give an example of handling tight deadlines.", Topic: "time management", Type: "behavioral", Mode: model.ModeBehavioral},
	},
}

// Technical returns the fallback set for (role, domain), falling back to the
// default frontend set when there is no entry for the pair.
func Technical(role, domain string) []model.Question {
	key := TechKey{Role: role, Domain: strings.ToLower(domain)}
	if qs, ok := technicalBank[key]; ok {
		return append([]model.Question(nil), qs...)
	}
	return append([]model.Question(nil), technicalBank[defaultTechKey]...)
}

// Behavioral returns the fallback set for a role, defaulting to the Software
// Engineer set on a miss.
func Behavioral(role string) []model.Question {
	if qs, ok := behavioralBank[role]; ok {
		return append([]model.Question(nil), qs...)
	}
	return append([]model.Question(nil), behavioralBank[defaultBehavioralRole]...)
}
