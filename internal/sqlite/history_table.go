// History table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func historySpec() tableSpec {
	return tableSpec{
		name: types.HistoryTable,
		columns: []string{
			"url", "title", "favicon", "last_visit_time", "visit_count",
			"typed_count", "created_at",
		},
		args: func(data any) ([]any, error) {
			h, ok := data.(types.HistoryItem)
			if !ok {
				return nil, types.ErrInvalidData
			}
			return []any{
				h.URL, h.Title, h.Favicon, encodeTimePtr(h.LastVisitTime),
				h.VisitCount, h.TypedCount, encodeTime(h.CreatedAt),
			}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var h types.HistoryItem
			var favicon, lastVisitTime, createdAt sql.NullString
			if err := row.Scan(
				&h.ID, &h.URL, &h.Title, &favicon, &lastVisitTime,
				&h.VisitCount, &h.TypedCount, &createdAt,
			); err != nil {
				return nil, err
			}
			h.Favicon = favicon.String
			var err error
			if h.LastVisitTime, err = decodeTimePtr(lastVisitTime); err != nil {
				return nil, err
			}
			if h.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			return h, nil
		},
	}
}
