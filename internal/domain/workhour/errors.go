package workhour

import "errors"

var (
	ErrRequestNotFound         = errors.New("work hour request not found")
	ErrDuplicatePendingRequest = errors.New("a request for this date is already pending")
	ErrDateNotInPast           = errors.New("can only request work hours for past dates")
	ErrDateAlreadyLogged       = errors.New("a work entry already exists for this date")
	ErrRequestAlreadyProcessed = errors.New("work hour request has already been processed")
	ErrAccessDenied            = errors.New("access denied")
)
