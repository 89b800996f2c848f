package types

import "time"

// Folder is a named container of tabs within a board.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BoardID   string    `json:"boardId"`
	Color     string    `json:"color"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID returns the folder id.
func (f Folder) EntityID() string { return f.ID }
