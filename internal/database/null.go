package database

import "database/sql"

// nullStringValue converts a sql.NullString to a string (empty if not valid)
func nullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}

// nullIntValue converts a sql.NullInt64 to an int (zero if not valid)
func nullIntValue(n sql.NullInt64) int {
	if n.Valid {
		return int(n.Int64)
	}
	return 0
}
