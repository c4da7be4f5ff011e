package tagging_test

import (
	"testing"

	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	"github.com/stretchr/testify/assert"
)

func TestMatchAgainstVocabulary_Partition(t *testing.T) {
	candidates := []string{"アート", "NFT", "旅行"}
	vocabulary := []string{"アート", "NFT"}

	existing, fresh := tagging.MatchAgainstVocabulary(candidates, vocabulary)

	assert.Equal(t, []string{"アート", "NFT"}, existing)
	assert.Equal(t, []string{"旅行"}, fresh)
}

func TestMatchAgainstVocabulary_UsesVocabularySpelling(t *testing.T) {
	existing, fresh := tagging.MatchAgainstVocabulary([]string{"hamcup"}, []string{"HamCup"})

	assert.Equal(t, []string{"HamCup"}, existing)
	assert.Empty(t, fresh)
}

func TestMatchAgainstVocabulary_BidirectionalContainment(t *testing.T) {
	// Candidate contained in vocabulary entry.
	existing, _ := tagging.MatchAgainstVocabulary([]string{"React"}, []string{"React Native"})
	assert.Equal(t, []string{"React Native"}, existing)

	// Vocabulary entry contained in candidate.
	existing, _ = tagging.MatchAgainstVocabulary([]string{"TypeScript入門"}, []string{"TypeScript"})
	assert.Equal(t, []string{"TypeScript"}, existing)
}

func TestMatchAgainstVocabulary_FirstVocabularyMatchWins(t *testing.T) {
	existing, _ := tagging.MatchAgainstVocabulary([]string{"web3"}, []string{"web", "web3"})

	assert.Equal(t, []string{"web"}, existing)
}

func TestMatchAgainstVocabulary_DeduplicatesBothSides(t *testing.T) {
	// Two candidates collapsing onto one vocabulary entry.
	existing, fresh := tagging.MatchAgainstVocabulary(
		[]string{"React", "React Native", "新しい", "新しい"},
		[]string{"React"},
	)

	assert.Equal(t, []string{"React"}, existing)
	assert.Equal(t, []string{"新しい"}, fresh)
}

func TestMatchAgainstVocabulary_SetUnionEqualsInput(t *testing.T) {
	candidates := []string{"アート", "NFT", "旅行", "音楽", "DAO"}
	vocabulary := []string{"NFT", "DAO"}

	existing, fresh := tagging.MatchAgainstVocabulary(candidates, vocabulary)

	union := make(map[string]bool)
	for _, e := range existing {
		union[e] = true
	}
	for _, f := range fresh {
		assert.False(t, union[f], "candidate %q in both partitions", f)
		union[f] = true
	}
	assert.Len(t, union, len(candidates))
}

func TestMatchAgainstVocabulary_EmptyVocabulary(t *testing.T) {
	existing, fresh := tagging.MatchAgainstVocabulary([]string{"アート"}, nil)

	assert.Empty(t, existing)
	assert.Equal(t, []string{"アート"}, fresh)
}
