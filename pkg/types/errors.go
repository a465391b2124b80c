package types

import "errors"

// Repository operation errors.
var (
	ErrNotFound         = errors.New("report not found")
	ErrInvalidReportID  = errors.New("invalid report id")
	ErrEmptyDescription = errors.New("description must not be empty")
)

// Config validation errors.
var (
	ErrCSVPathEmpty    = errors.New("report csv path must not be empty")
	ErrListenAddrEmpty = errors.New("listen address must not be empty")
)
