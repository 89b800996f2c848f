// Boards table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func boardsSpec() tableSpec {
	return tableSpec{
		name:    types.BoardsTable,
		columns: []string{"name", "color", "created_at", "updated_at"},
		args: func(data any) ([]any, error) {
			b, ok := data.(types.Board)
			if !ok {
				return nil, types.ErrInvalidData
			}
			if b.Name == "" {
				return nil, types.ErrInvalidName
			}
			return []any{b.Name, b.Color, encodeTime(b.CreatedAt), encodeTime(b.UpdatedAt)}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var b types.Board
			var color sql.NullString
			var createdAt, updatedAt sql.NullString
			if err := row.Scan(&b.ID, &b.Name, &color, &createdAt, &updatedAt); err != nil {
				return nil, err
			}
			b.Color = color.String
			var err error
			if b.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			if b.UpdatedAt, err = decodeTime(updatedAt); err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}
