package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArticleID uniquely identifies a stored news article.
type ArticleID uuid.UUID

// Article is a single cyber security news item.
type Article struct {
	ID          ArticleID `json:"id"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	Content     string    `json:"content,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// MarshalText encodes the article ID in its canonical UUID form.
func (id ArticleID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an article ID from its UUID text form.
func (id *ArticleID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
