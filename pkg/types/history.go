package types

import "time"

// HistoryItem is a browser history entry. Read-mostly: the background
// service sources these from the browser's native history rather than
// user action.
type HistoryItem struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Favicon       string     `json:"favicon,omitempty"`
	LastVisitTime *time.Time `json:"lastVisitTime,omitempty"`
	VisitCount    int        `json:"visitCount,omitempty"`
	TypedCount    int        `json:"typedCount,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// EntityID returns the history item id.
func (h HistoryItem) EntityID() string { return h.ID }
