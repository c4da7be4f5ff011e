package entity

import (
	"time"
)

// Tag represents a topical tag attached to posts.
type Tag struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Color     string    `bson:"color" json:"color"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DefaultTagColor is applied to tags created by the auto-tagging engine.
const DefaultTagColor = "#3b82f6"

// TagRef is a lightweight reference to a stored tag.
type TagRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
