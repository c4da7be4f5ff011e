package tagging_test

import (
	"strings"
	"testing"

	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyContentFloor(t *testing.T) {
	score := tagging.Score(tagging.ContentToAnalyze{}, nil)

	// 0.1 + 0.1 + 0.2 short-field branches, no tag bonus.
	assert.InDelta(t, 0.4, score, 1e-9)
}

func TestScore_RichContentCapsAtOne(t *testing.T) {
	content := tagging.ContentToAnalyze{
		Title:   strings.Repeat("あ", 11),
		Excerpt: strings.Repeat("い", 51),
		Body:    strings.Repeat("う", 201),
	}
	score := tagging.Score(content, []string{"a", "b", "c", "d", "e"})

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_TagBonusCappedAtPointThree(t *testing.T) {
	empty := tagging.ContentToAnalyze{}

	three := tagging.Score(empty, []string{"a", "b", "c"})
	ten := tagging.Score(empty, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"})

	assert.InDelta(t, 0.7, three, 1e-9)
	assert.InDelta(t, three, ten, 1e-9)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	cases := []struct {
		content tagging.ContentToAnalyze
		tags    []string
	}{
		{tagging.ContentToAnalyze{}, nil},
		{tagging.ContentToAnalyze{Title: "short"}, []string{}},
		{tagging.ContentToAnalyze{Title: strings.Repeat("x", 500), Excerpt: strings.Repeat("y", 500), Body: strings.Repeat("z", 5000)}, make([]string, 100)},
	}
	for _, tc := range cases {
		score := tagging.Score(tc.content, tc.tags)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_RuneLengthBoundaries(t *testing.T) {
	// Exactly at the threshold stays on the short branch.
	atLimit := tagging.ContentToAnalyze{Title: strings.Repeat("あ", 10)}
	overLimit := tagging.ContentToAnalyze{Title: strings.Repeat("あ", 11)}

	assert.InDelta(t, 0.4, tagging.Score(atLimit, nil), 1e-9)
	assert.InDelta(t, 0.6, tagging.Score(overLimit, nil), 1e-9)
}
