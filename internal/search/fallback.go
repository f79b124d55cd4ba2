package search

import "strings"

var technicalKeywords = []string{"technical", "code", "programming", "software"}

var behavioralKeywords = []string{"behavioral", "star", "situation", "experience"}

var technicalFallback = []Result{
	{
		Title:   "Technical Interview Preparation Guide",
		Snippet: "Comprehensive guide to technical interviews including coding challenges, system design, and algorithm questions.",
		URL:     "https://example.com/technical-interview-guide",
	},
	{
		Title:   "Common Coding Interview Questions",
		Snippet: "Collection of frequently asked coding interview questions with solutions in multiple programming languages.",
		URL:     "https://example.com/coding-questions",
	},
}

var behavioralFallback = []Result{
	{
		Title:   "Behavioral Interview Questions and Answers",
		Snippet: "Learn how to answer behavioral interview questions using the STAR method with examples.",
		URL:     "https://example.com/behavioral-interviews",
	},
	{
		Title:   "STAR Method Interview Guide",
		Snippet: "Complete guide to using the Situation, Task, Action, Result method for behavioral interviews.",
		URL:     "https://example.com/star-method",
	},
}

// FallbackResults picks the fixed result set whose keywords appear in the
// query. Technical keywords win over behavioral ones; a query matching
// neither set gets nothing.
func FallbackResults(query string) []Result {
	q := strings.ToLower(query)
	for _, term := range technicalKeywords {
		if strings.Contains(q, term) {
			return append([]Result(nil), technicalFallback...)
		}
	}
	for _, term := range behavioralKeywords {
		if strings.Contains(q, term) {
			return append([]Result(nil), behavioralFallback...)
		}
	}
	return nil
}
