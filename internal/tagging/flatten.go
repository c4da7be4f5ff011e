package tagging

import (
	"strings"

	"github.com/ramentaro/ramen-taro-api/internal/domain/entity"
)

// FlattenBlocks reduces a structured post body to plain text by joining
// the text of every span with spaces. Blocks without children (images,
// embeds) contribute an empty string, matching the source CMS behavior
// of joining per-block text even when a block has none.
func FlattenBlocks(blocks []entity.Block) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		spans := make([]string, 0, len(block.Children))
		for _, child := range block.Children {
			spans = append(spans, child.Text)
		}
		parts = append(parts, strings.Join(spans, " "))
	}
	return strings.Join(parts, " ")
}
