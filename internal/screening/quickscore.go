package screening

import (
	"fmt"
	"strings"

	"github.com/jonathan/hr-agent/internal/types"
)

// Quick-score component weights. Keyword matches dominate, capped experience
// contributes up to 30 points, and education presence adds a flat bonus.
const (
	keywordWeight      = 50.0
	experienceWeight   = 30.0
	experienceCapYears = 5.0
	educationBonus     = 20.0
	educationDefault   = 10.0
)

// neutralQuickScore is returned when the job description yields no
// recognized keywords and there is nothing to match against.
const neutralQuickScore = 50.0

// QuickScore computes the zero-network heuristic score for a candidate.
// The result is always within [1, 100].
func QuickScore(facts *types.CandidateFacts, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return neutralQuickScore
	}

	candidateText := strings.ToLower(facts.Summary + " " + strings.Join(facts.Skills, " "))

	matches := 0
	for _, keyword := range jobKeywords {
		if strings.Contains(candidateText, keyword) {
			matches++
		}
	}
	keywordScore := float64(matches) / float64(len(jobKeywords)) * keywordWeight

	experienceScore := float64(facts.ExperienceYears) / experienceCapYears * experienceWeight
	if experienceScore > experienceWeight {
		experienceScore = experienceWeight
	}

	educationScore := educationDefault
	if facts.Education != "" {
		educationScore = educationBonus
	}

	return ClampScore(keywordScore + experienceScore + educationScore)
}

// QuickReasons synthesizes up to three assessment reasons without any
// network call, from experience, skill count and education presence.
func QuickReasons(facts *types.CandidateFacts) []string {
	var reasons []string

	switch {
	case facts.ExperienceYears >= 5:
		reasons = append(reasons, fmt.Sprintf("Strong experience with %d+ years in the field", facts.ExperienceYears))
	case facts.ExperienceYears >= 2:
		reasons = append(reasons, fmt.Sprintf("Good experience with %d years in the field", facts.ExperienceYears))
	default:
		reasons = append(reasons, "Limited professional experience")
	}

	switch {
	case len(facts.Skills) >= 5:
		reasons = append(reasons, fmt.Sprintf("Diverse skill set including %s", strings.Join(facts.Skills[:3], ", ")))
	case len(facts.Skills) >= 2:
		reasons = append(reasons, fmt.Sprintf("Relevant skills in %s", strings.Join(facts.Skills, ", ")))
	default:
		reasons = append(reasons, "Limited technical skills listed")
	}

	if facts.Education != "" {
		reasons = append(reasons, "Has relevant educational background")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// ClampScore bounds a score to the valid [1, 100] range.
func ClampScore(score float64) float64 {
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}
