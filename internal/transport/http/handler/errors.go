package handler

const (
	errInternalServer     = "Internal Server Error"
	errMissingCredentials = "Missing credentials"
	errInvalidCredentials = "Invalid credentials"
	errUserExists         = "User already exists"

	errInvalidMovieID   = "Invalid movie ID"
	errMovieNotFound    = "Movie not found"
	errInvalidCommentID = "Invalid comment ID"
	errCommentNotFound  = "Comment not found"
	errInvalidTheaterID = "Invalid theater ID"
	errTheaterNotFound  = "Theater not found"

	errBadIDFormat = "ID format is incorrect"
)
