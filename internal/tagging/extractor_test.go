package tagging_test

import (
	"testing"

	"github.com/ramentaro/ramen-taro-api/internal/tagging"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_NoMatches(t *testing.T) {
	assert.Empty(t, tagging.ExtractKeywords(""))
	assert.Empty(t, tagging.ExtractKeywords("completely unrelated words"))
	assert.Empty(t, tagging.ExtractKeywords("12345 67890"))
}

func TestExtractKeywords_NormalizesSynonyms(t *testing.T) {
	keywords := tagging.ExtractKeywords("ハムカップで技術の話")

	assert.Contains(t, keywords, "HamCup")
	assert.Contains(t, keywords, "テクノロジー")
	assert.NotContains(t, keywords, "ハムカップ")
	assert.NotContains(t, keywords, "技術")
}

func TestExtractKeywords_UnmappedMatchPassesThroughVerbatim(t *testing.T) {
	keywords := tagging.ExtractKeywords("週末の旅行の話")

	// 旅行 has no synonym entry, so the raw match is used as-is.
	assert.Contains(t, keywords, "旅行")
}

func TestExtractKeywords_NoDuplicates(t *testing.T) {
	keywords := tagging.ExtractKeywords("NFT NFT NFT アート アート")

	seen := make(map[string]int)
	for _, k := range keywords {
		seen[k]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "keyword %q appeared %d times", name, count)
	}
	assert.Equal(t, []string{"NFT", "アート"}, keywords)
}

func TestExtractKeywords_CategoryOrderPreserved(t *testing.T) {
	// Art terms appear before community terms in the text, but the
	// community category is scanned first.
	keywords := tagging.ExtractKeywords("イラストとアートとDAOとNFT")

	assert.Equal(t, []string{"DAO", "NFT", "イラスト", "アート"}, keywords)
}

func TestExtractKeywords_CaseInsensitive(t *testing.T) {
	keywords := tagging.ExtractKeywords("learning REACT and typescript")

	// Lowercased matches have no exact synonym entry and pass through
	// as matched.
	assert.Contains(t, keywords, "REACT")
	assert.Contains(t, keywords, "typescript")
}
