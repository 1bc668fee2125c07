package entity

import "errors"

var (
	ErrProspectNotFound = errors.New("prospect not found")
	ErrTouchNotFound    = errors.New("touch not found")
)
