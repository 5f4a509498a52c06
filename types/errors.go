package types

import "errors"

var (
	// ErrNotFound is returned when a document or remote asset doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the resource conflicts (e.g. update of old revision)
	ErrConflict = errors.New("conflict")

	// ErrBadRequest is returned on malformed input
	ErrBadRequest = errors.New("bad request")

	// ErrNotAuthorized is returned when the session cookie is missing or invalid
	ErrNotAuthorized = errors.New("not authorized")

	// ErrGalleryMismatch is returned when image URLs and media public ids
	// don't pair up one-to-one
	ErrGalleryMismatch = errors.New("images and cloudinaryPublicIds must be the same length")

	// ErrInternal (for unhandled exceptions)
	ErrInternal = errors.New("internal error")
)
