package handlers

import "errors"

var (
	errInvalidStatus = errors.New("invalid payment status")
	errInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)
