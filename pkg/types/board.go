package types

import "time"

// DefaultBoardID is the reserved id of the bootstrap board. It is
// materialized once, only when the store is confirmed empty after
// hydration completes.
const DefaultBoardID = "board-default"

// Board is the top-level workspace grouping. Folders belong to exactly
// one board.
type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the board id.
func (b Board) EntityID() string { return b.ID }

// Touch refreshes the modification timestamp.
func (b *Board) Touch(now time.Time) { b.UpdatedAt = now }

// DefaultBoard returns the bootstrap board created on first run.
func DefaultBoard(now time.Time) Board {
	return Board{
		ID:        DefaultBoardID,
		Name:      "My Board",
		Color:     "#4F46E5",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
