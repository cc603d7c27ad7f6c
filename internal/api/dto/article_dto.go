package dto

import "time"

// ArticleResponse is one knowledge base entry.
type ArticleResponse struct {
	ID           int64      `json:"id"`
	ArticleID    string     `json:"article_id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Content      string     `json:"content"`
	Keywords     string     `json:"keywords"`
	Views        int64      `json:"views"`
	HelpfulCount int64      `json:"helpful_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
