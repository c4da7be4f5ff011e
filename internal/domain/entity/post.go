package entity

import (
	"time"
)

// Span is a single text run inside a rich-text block.
type Span struct {
	Text string `bson:"text" json:"text"`
}

// Block is one element of a post body. Only blocks carrying text spans
// contribute to analysis; other block types (images, embeds) are kept
// opaque and skipped when flattening.
type Block struct {
	Type     string `bson:"_type" json:"_type"`
	Children []Span `bson:"children,omitempty" json:"children,omitempty"`
}

// Post represents a blog post document.
//
// AutoTagged/AutoTaggedAt are written exactly once, by the auto-tagging
// engine, and only together with a non-empty tag list. Both carry
// omitempty so an never-processed post has no auto_tagged field at all —
// the bulk tagger selects on that absence.
type Post struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Slug         string     `bson:"slug" json:"slug"`
	Excerpt      string     `bson:"excerpt" json:"excerpt"`
	Body         []Block    `bson:"body,omitempty" json:"body,omitempty"`
	Tags         []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	AutoTagged   bool       `bson:"auto_tagged,omitempty" json:"auto_tagged,omitempty"`
	AutoTaggedAt *time.Time `bson:"auto_tagged_at,omitempty" json:"auto_tagged_at,omitempty"`
	Published    bool       `bson:"published" json:"published"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
