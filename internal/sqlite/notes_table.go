// Notes table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func notesSpec() tableSpec {
	return tableSpec{
		name: types.NotesTable,
		columns: []string{
			"content", "format", "folder_id", "board_id", "tab_id",
			"created_at", "updated_at",
		},
		args: func(data any) ([]any, error) {
			n, ok := data.(types.Note)
			if !ok {
				return nil, types.ErrInvalidData
			}
			return []any{
				n.Content, n.Format, n.FolderID, n.BoardID, n.TabID,
				encodeTime(n.CreatedAt), encodeTime(n.UpdatedAt),
			}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var n types.Note
			var folderID, boardID, tabID, createdAt, updatedAt sql.NullString
			if err := row.Scan(
				&n.ID, &n.Content, &n.Format, &folderID, &boardID, &tabID,
				&createdAt, &updatedAt,
			); err != nil {
				return nil, err
			}
			n.FolderID = folderID.String
			n.BoardID = boardID.String
			n.TabID = tabID.String
			var err error
			if n.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			if n.UpdatedAt, err = decodeTime(updatedAt); err != nil {
				return nil, err
			}
			return n, nil
		},
	}
}
