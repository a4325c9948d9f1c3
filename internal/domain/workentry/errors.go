package workentry

import "errors"

var (
	ErrEntryNotFound        = errors.New("work entry not found")
	ErrDuplicateEntry       = errors.New("a work entry already exists for this date")
	ErrDateNotAllowed       = errors.New("work entries may only be created for today or an approved work hour request date")
	ErrEntryAlreadyReviewed = errors.New("work entry has already been reviewed")
)
