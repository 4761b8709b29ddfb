package holiday

import "errors"

var (
	ErrEntryNotFound = errors.New("holiday work entry not found")
	ErrDuplicateDate = errors.New("a holiday work entry already exists for this date")
)
