package note

import "time"

// DateLayout is the format of Note.Date ("YYYY-MM-DD HH:MM", local time).
const DateLayout = "2006-01-02 15:04"

// DefaultCategory is applied when a note is created without a category.
const DefaultCategory = "General"

// Note is a single captured thought. Notes have no stored identifier; they are
// addressed by their 1-based position in whichever collection holds them.
// Field order matches the on-disk JSON layout.
type Note struct {
	// Title is a short user-supplied heading (not validated)
	Title string `json:"title"`

	// Content is the free-text body, may be empty
	Content string `json:"content"`

	// Category is a short grouping label
	Category string `json:"category"`

	// Date is the creation timestamp, set once by New
	Date string `json:"date"`
}

// New creates a note stamped with now. An empty category becomes DefaultCategory.
func New(title, content, category string, now time.Time) Note {
	if category == "" {
		category = DefaultCategory
	}
	return Note{
		Title:    title,
		Content:  content,
		Category: category,
		Date:     now.Format(DateLayout),
	}
}
