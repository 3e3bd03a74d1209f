package database

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable is returned when the database file cannot be opened.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrQueryFailed is returned when a statement cannot be executed or its
	// rows cannot be read.
	ErrQueryFailed = errors.New("query failed")
)

// queryFailed wraps err with the operation name unless it already carries
// one of the package sentinels.
func queryFailed(op string, err error) error {
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrQueryFailed) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrQueryFailed, err)
}
