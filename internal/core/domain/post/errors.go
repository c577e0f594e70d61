package post

import "errors"

var (
	ErrPostDoesNotExist = errors.New("post not found")
	ErrPostPermission   = errors.New("post belongs to another user")
)
