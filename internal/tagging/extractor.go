// Package tagging implements the rule-based content analysis engine:
// keyword extraction against a fixed topic table, confidence scoring,
// and matching of candidates against the stored tag vocabulary. All
// functions are pure; persistence and orchestration live in the usecase
// layer.
package tagging

import (
	"regexp"
)

// keywordCategory pairs a topic name with the pattern matching its
// Japanese/English term variants. Categories are scanned in slice order
// so extraction order is stable.
type keywordCategory struct {
	name    string
	pattern *regexp.Regexp
}

// keywordCategories is the fixed topic table. Loaded once at process
// start; never mutated.
var keywordCategories = []keywordCategory{
	{"hamcup", regexp.MustCompile(`(?i)ハムカップ|HamCup|DAO|NFT|コミュニティ|web3`)},
	{"art", regexp.MustCompile(`(?i)アート|イラスト|絵|描|作品|デザイン|クリエイト|創作`)},
	{"tech", regexp.MustCompile(`(?i)技術|プログラミング|開発|エンジニア|コード|システム|アプリ|ウェブ|web|react|next\.js|typescript|javascript`)},
	{"lifestyle", regexp.MustCompile(`(?i)日常|生活|趣味|体験|感想|レビュー|おすすめ|グルメ|旅行|音楽|映画`)},
	{"learning", regexp.MustCompile(`(?i)学習|勉強|成長|挑戦|初心者|練習|上達|スキル|知識|経験`)},
	{"business", regexp.MustCompile(`(?i)ビジネス|仕事|副業|収益|マーケティング|ブランド|戦略`)},
}

// tagSynonyms maps a raw matched substring to its canonical tag name.
// Lookup is exact (case-sensitive): a lowercase "react" match passes
// through verbatim while "React" maps to the canonical entry.
var tagSynonyms = map[string]string{
	"ハムカップ":      "HamCup",
	"DAO":        "DAO",
	"NFT":        "NFT",
	"コミュニティ":     "コミュニティ",
	"アート":        "アート",
	"イラスト":       "イラスト",
	"技術":         "テクノロジー",
	"プログラミング":    "プログラミング",
	"開発":         "開発",
	"学習":         "学習",
	"成長":         "成長",
	"挑戦":         "チャレンジ",
	"初心者":        "初心者向け",
	"React":      "React",
	"Next.js":    "Next.js",
	"TypeScript": "TypeScript",
	"日常":         "ライフスタイル",
	"体験":         "体験談",
	"レビュー":       "レビュー",
}

// ExtractKeywords scans text against every topic category and returns
// the canonical names of all matches, deduplicated, preserving
// first-seen order across categories. Text with no matches yields an
// empty slice.
func ExtractKeywords(text string) []string {
	keywords := []string{}
	seen := make(map[string]bool)

	for _, category := range keywordCategories {
		for _, match := range category.pattern.FindAllString(text, -1) {
			normalized := match
			if canonical, ok := tagSynonyms[match]; ok {
				normalized = canonical
			}
			if !seen[normalized] {
				seen[normalized] = true
				keywords = append(keywords, normalized)
			}
		}
	}

	return keywords
}
