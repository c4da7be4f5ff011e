package tagging

// maxAnalysisTags caps the combined suggestion list produced by a single
// analysis, before any caller-side truncation.
const maxAnalysisTags = 8

// AnalysisResult is the outcome of analyzing one piece of content
// against the current tag vocabulary.
type AnalysisResult struct {
	SuggestedTags []string
	Confidence    float64
	ExistingTags  []string
	NewTags       []string
}

// AnalyzeContent runs extraction over the concatenated text fields,
// partitions the candidates against the vocabulary and scores the
// result. SuggestedTags lists existing matches first, then new names,
// capped at eight; ExistingTags and NewTags are the uncapped partitions.
func AnalyzeContent(content ContentToAnalyze, vocabulary []string) AnalysisResult {
	fullText := content.Title + " " + content.Excerpt + " " + content.Body
	candidates := ExtractKeywords(fullText)

	existing, fresh := MatchAgainstVocabulary(candidates, vocabulary)

	combined := make([]string, 0, len(existing)+len(fresh))
	combined = append(combined, existing...)
	combined = append(combined, fresh...)

	confidence := Score(content, combined)

	suggested := combined
	if len(suggested) > maxAnalysisTags {
		suggested = suggested[:maxAnalysisTags]
	}

	return AnalysisResult{
		SuggestedTags: suggested,
		Confidence:    confidence,
		ExistingTags:  existing,
		NewTags:       fresh,
	}
}
