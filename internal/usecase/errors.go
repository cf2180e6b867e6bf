package usecase

import "errors"

var (
	ErrGalleryNotFound    = errors.New("gallery not found")
	ErrSlugTaken          = errors.New("a gallery with this slug already exists")
	ErrTitleRequired      = errors.New("title is required")
	ErrMediaNotFound      = errors.New("media not found")
	ErrUnknownID          = errors.New("order references an item that does not exist")
	ErrDuplicateID        = errors.New("order lists an item more than once")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrStaffNameRequired  = errors.New("staff name is required")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStoryIDRequired    = errors.New("story ID is required")
	ErrInvalidReaction    = errors.New("invalid reaction type")
	ErrContentRequired    = errors.New("content is required")
	ErrContentTooLong     = errors.New("content must be 500 characters or fewer")
	ErrEngagementNotFound = errors.New("engagement not found")
)

// ErrInvalidInput wraps validator failures on free-form input.
var ErrInvalidInput = errors.New("invalid input")
