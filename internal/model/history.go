package model

const (
	EventAuthorAdded   = "authorAdded"
	EventAuthorUpdated = "authorUpdated"
	EventAuthorDeleted = "authorDeleted"
	EventBookAdded     = "bookAdded"
	EventBookUpdated   = "bookUpdated"
	EventBookDeleted   = "bookDeleted"
)

type HistoryEvent struct {
	ID        int            `json:"id"`
	EventType string         `json:"eventType"`
	BookID    *int           `json:"bookId,omitempty"`
	AuthorID  *int           `json:"authorId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Date      int64          `json:"date"`

	// Joined in on listing.
	AuthorName string `json:"authorName,omitempty"`
	BookTitle  string `json:"bookTitle,omitempty"`
}

type FindHistory struct {
	EventType *string `json:"event_type"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

// HistoryPage is one page of history events plus pagination state.
type HistoryPage struct {
	Items      []*HistoryEvent `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}
