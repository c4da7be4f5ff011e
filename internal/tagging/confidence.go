package tagging

import (
	"unicode/utf8"
)

// ContentToAnalyze is the per-request view of a post's text fields.
// The body must already be flattened to plain text.
type ContentToAnalyze struct {
	Title   string
	Excerpt string
	Body    string
}

// Score computes a [0,1] confidence from text richness and candidate
// count. Each component is independently capped and the sum is capped
// at 1.0. Field lengths are measured in runes so Japanese text is not
// penalized for its byte width.
func Score(content ContentToAnalyze, candidateTags []string) float64 {
	titleScore := 0.1
	if utf8.RuneCountInString(content.Title) > 10 {
		titleScore = 0.3
	}
	excerptScore := 0.1
	if utf8.RuneCountInString(content.Excerpt) > 50 {
		excerptScore = 0.3
	}
	bodyScore := 0.2
	if utf8.RuneCountInString(content.Body) > 200 {
		bodyScore = 0.4
	}
	tagScore := float64(len(candidateTags)) * 0.1
	if tagScore > 0.3 {
		tagScore = 0.3
	}

	total := titleScore + excerptScore + bodyScore + tagScore
	if total > 1.0 {
		total = 1.0
	}
	return total
}
