package passwordreset

import "errors"

var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrTokenDoesNotExist     = errors.New("password reset token does not exist")
	ErrDispatch              = errors.New("could not dispatch password reset secret")
)
