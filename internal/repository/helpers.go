package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value,
// NULL when nil.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

// nullableIntToValue converts a *int to a SQLite-storable value, NULL when nil.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStrToValue converts a *string to a SQLite-storable value, NULL when nil.
func nullableStrToValue(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// marshalJSONColumn encodes a map or slice for storage in a TEXT column.
func marshalJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	return string(b), nil
}

// unmarshalJSONColumn decodes a TEXT column into the given destination.
// Empty strings decode as the zero value.
func unmarshalJSONColumn(s string, dst any) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}
