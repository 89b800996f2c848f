// Tasks table codec for the SQLite backend.
package sqlite

import (
	"database/sql"

	"github.com/petar-djukic/satchel/pkg/types"
)

func tasksSpec() tableSpec {
	return tableSpec{
		name: types.TasksTable,
		columns: []string{
			"title", "description", "status", "priority", "due_date",
			"completed_at", "board_id", "folder_id", "tab_ids", "checklist",
			"completed_sessions", "created_at", "updated_at",
		},
		args: func(data any) ([]any, error) {
			t, ok := data.(types.Task)
			if !ok {
				return nil, types.ErrInvalidData
			}
			if t.Title == "" {
				return nil, types.ErrInvalidName
			}
			tabIDs, err := encodeStrings(t.TabIDs)
			if err != nil {
				return nil, err
			}
			checklist, err := encodeChecklist(t.Checklist)
			if err != nil {
				return nil, err
			}
			return []any{
				t.Title, t.Description, t.Status, t.Priority, encodeTimePtr(t.DueDate),
				encodeTimePtr(t.CompletedAt), t.BoardID, t.FolderID, tabIDs, checklist,
				t.CompletedSessions, encodeTime(t.CreatedAt), encodeTime(t.UpdatedAt),
			}, nil
		},
		scan: func(row rowScanner) (any, error) {
			var t types.Task
			var description, boardID, folderID sql.NullString
			var dueDate, completedAt, createdAt, updatedAt sql.NullString
			var tabIDs, checklist string
			if err := row.Scan(
				&t.ID, &t.Title, &description, &t.Status, &t.Priority, &dueDate,
				&completedAt, &boardID, &folderID, &tabIDs, &checklist,
				&t.CompletedSessions, &createdAt, &updatedAt,
			); err != nil {
				return nil, err
			}
			t.Description = description.String
			t.BoardID = boardID.String
			t.FolderID = folderID.String
			var err error
			if t.DueDate, err = decodeTimePtr(dueDate); err != nil {
				return nil, err
			}
			if t.CompletedAt, err = decodeTimePtr(completedAt); err != nil {
				return nil, err
			}
			if t.TabIDs, err = decodeStrings(tabIDs); err != nil {
				return nil, err
			}
			if t.Checklist, err = decodeChecklist(checklist); err != nil {
				return nil, err
			}
			if t.CreatedAt, err = decodeTime(createdAt); err != nil {
				return nil, err
			}
			if t.UpdatedAt, err = decodeTime(updatedAt); err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}
