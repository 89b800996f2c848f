// Tabs table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func tabsSpec() tableSpec {
	return tableSpec{
		name: types.TabsTable,
		columns: []string{
			"title", "url", "favicon", "folder_id", "browser_tab_id",
			"last_accessed", "status", "ordinal", "created_at",
		},
		args: func(data any) ([]any, error) {
			t, ok := data.(types.Tab)
			if !ok {
				return nil, types.ErrInvalidData
			}
			var browserTabID any
			if t.BrowserTabID != nil {
				browserTabID = *t.BrowserTabID
			}
			return []any{
				t.Title, t.URL, t.Favicon, t.FolderID, browserTabID,
				encodeTime(t.LastAccessed), t.Status, t.Order, encodeTime(t.CreatedAt),
			}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var t types.Tab
			var favicon, lastAccessed, createdAt sql.NullString
			var browserTabID sql.NullInt64
			if err := row.Scan(
				&t.ID, &t.Title, &t.URL, &favicon, &t.FolderID, &browserTabID,
				&lastAccessed, &t.Status, &t.Order, &createdAt,
			); err != nil {
				return nil, err
			}
			t.Favicon = favicon.String
			if browserTabID.Valid {
				id := int(browserTabID.Int64)
				t.BrowserTabID = &id
			}
			var err error
			if t.LastAccessed, err = decodeTime(lastAccessed); err != nil {
				return nil, err
			}
			if t.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}
