// Sessions table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func sessionsSpec() tableSpec {
	return tableSpec{
		name: types.SessionsTable,
		columns: []string{
			"name", "tab_ids", "start_time", "end_time", "summary", "created_at",
		},
		args: func(data any) ([]any, error) {
			s, ok := data.(types.Session)
			if !ok {
				return nil, types.ErrInvalidData
			}
			tabIDs, err := encodeStrings(s.TabIDs)
			if err != nil {
				return nil, err
			}
			return []any{
				s.Name, tabIDs, encodeTime(s.StartTime), encodeTimePtr(s.EndTime),
				s.Summary, encodeTime(s.CreatedAt),
			}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var s types.Session
			var tabIDs string
			var startTime, endTime, summary, createdAt sql.NullString
			if err := row.Scan(
				&s.ID, &s.Name, &tabIDs, &startTime, &endTime, &summary, &createdAt,
			); err != nil {
				return nil, err
			}
			s.Summary = summary.String
			var err error
			if s.TabIDs, err = decodeStrings(tabIDs); err != nil {
				return nil, err
			}
			if s.StartTime, err = decodeTime(startTime); err != nil {
				return nil, err
			}
			if s.EndTime, err = decodeTimePtr(endTime); err != nil {
				return nil, err
			}
			if s.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}
