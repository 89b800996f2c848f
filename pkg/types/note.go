package types

import "time"

// Note formats.
const (
	NoteFormatMarkdown = "markdown"
	NoteFormatText     = "text"
)

var validNoteFormats = map[string]bool{
	NoteFormatMarkdown: true,
	NoteFormatText:     true,
}

// Note is a free-form note, optionally attached to a folder, board, or
// tab.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Format    string    `json:"format"`
	FolderID  string    `json:"folderId,omitempty"`
	BoardID   string    `json:"boardId,omitempty"`
	TabID     string    `json:"tabId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the note id.
func (n Note) EntityID() string { return n.ID }

// Touch refreshes the modification timestamp.
func (n *Note) Touch(now time.Time) { n.UpdatedAt = now }

// SetFormat sets the note format. Returns ErrInvalidState if the format
// is not recognized.
func (n *Note) SetFormat(format string) error {
	if !validNoteFormats[format] {
		return ErrInvalidState
	}
	n.Format = format
	return nil
}
