// Column codec helpers shared by the entity table specs. Timestamps are
// RFC 3339 with nanoseconds so round trips preserve the original value;
// string slices and checklists ride in JSON text columns.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/petar-djukic/satchel/pkg/types"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// encodeTime formats a timestamp for storage. The zero time is stored
// as NULL.
func encodeTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// encodeTimePtr formats an optional timestamp; nil stores as NULL.
func encodeTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return encodeTime(*t)
}

// decodeTime parses a stored timestamp. NULL decodes to the zero time.
func decodeTime(s sql.NullString) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s.String, err)
	}
	return t, nil
}

// decodeTimePtr parses an optional stored timestamp. NULL decodes to
// nil.
func decodeTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := decodeTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// encodeStrings marshals a string slice into a JSON text column. nil
// encodes as the empty array so the column never holds SQL NULL.
func encodeStrings(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding string array: %w", err)
	}
	return string(data), nil
}

// encodeChecklist marshals a checklist into a JSON text column.
func encodeChecklist(v []types.ChecklistItem) (string, error) {
	if v == nil {
		v = []types.ChecklistItem{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding checklist: %w", err)
	}
	return string(data), nil
}

// decodeChecklist unmarshals a JSON checklist column.
func decodeChecklist(s string) ([]types.ChecklistItem, error) {
	if s == "" {
		return []types.ChecklistItem{}, nil
	}
	var out []types.ChecklistItem
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding checklist: %w", err)
	}
	if out == nil {
		out = []types.ChecklistItem{}
	}
	return out, nil
}

// decodeStrings unmarshals a JSON array of strings.
func decodeStrings(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding string array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
