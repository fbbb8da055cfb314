// Package screening ranks resumes against a job description using a cheap
// keyword heuristic that escalates to a model-backed scorer only for
// promising candidates.
package screening

import "strings"

// skillVocabulary is the fixed set of skill/technology keywords recognized
// in job descriptions. Matching is case-insensitive substring matching.
var skillVocabulary = []string{
	"python", "javascript", "react", "node.js", "sql", "aws", "docker",
	"kubernetes", "git", "agile", "scrum", "machine learning", "ai",
	"data science", "backend", "frontend", "full stack", "devops",
}

// ExtractJobKeywords returns the vocabulary keywords present in the job
// description, in vocabulary order.
func ExtractJobKeywords(jobDescription string) []string {
	jobLower := strings.ToLower(jobDescription)

	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(jobLower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
