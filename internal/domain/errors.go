package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid or expired")

	ErrMovieNotFound   = errors.New("movie not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrTheaterNotFound = errors.New("theater not found")
)
