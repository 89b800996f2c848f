package types

import "time"

// Tab statuses. Open tabs are linked to a live browser tab; closed tabs
// are saved references only.
const (
	TabStatusOpen   = "open"
	TabStatusClosed = "closed"
)

// validTabStatuses is the set of recognized tab status values.
var validTabStatuses = map[string]bool{
	TabStatusOpen:   true,
	TabStatusClosed: true,
}

// Tab is a saved browser tab reference. FolderID may be empty, meaning
// the tab is unfiled. BrowserTabID links to a live browser tab when the
// tab is open; nil otherwise.
type Tab struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Favicon      string    `json:"favicon,omitempty"`
	FolderID     string    `json:"folderId"`
	BrowserTabID *int      `json:"tabId,omitempty"`
	LastAccessed time.Time `json:"lastAccessed"`
	Status       string    `json:"status"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntityID returns the tab id.
func (t Tab) EntityID() string { return t.ID }

// SetStatus sets the tab status. Returns ErrInvalidState if the status
// is not recognized. Idempotent.
func (t *Tab) SetStatus(status string) error {
	if !validTabStatuses[status] {
		return ErrInvalidState
	}
	t.Status = status
	return nil
}
