// Folders table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func foldersSpec() tableSpec {
	return tableSpec{
		name:    types.FoldersTable,
		columns: []string{"name", "board_id", "color", "ordinal", "created_at"},
		args: func(data any) ([]any, error) {
			f, ok := data.(types.Folder)
			if !ok {
				return nil, types.ErrInvalidData
			}
			if f.Name == "" {
				return nil, types.ErrInvalidName
			}
			return []any{f.Name, f.BoardID, f.Color, f.Order, encodeTime(f.CreatedAt)}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var f types.Folder
			var color, createdAt sql.NullString
			if err := row.Scan(&f.ID, &f.Name, &f.BoardID, &color, &f.Order, &createdAt); err != nil {
				return nil, err
			}
			f.Color = color.String
			var err error
			if f.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}
