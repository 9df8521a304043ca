package service

import "errors"

// Sentinel errors handlers map to HTTP statuses.
var (
	ErrNotFound    = errors.New("not found")
	ErrNotOwner    = errors.New("only the owner can modify this content")
	ErrBadTarget   = errors.New("invalid target type")
	ErrNestedReply = errors.New("replies cannot be nested")
)
