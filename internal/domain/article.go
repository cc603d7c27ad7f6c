package domain

import "time"

// Article is a knowledge base entry. Keywords is a comma-delimited list.
// Views increments on read; HelpfulCount on explicit feedback.
type Article struct {
	ID           int64
	ArticleID    string
	Title        string
	Category     string
	Content      string
	Keywords     string
	Views        int64
	HelpfulCount int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
