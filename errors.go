package blocks

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrDuplicateID indicates two blocks in a sequence share an id.
	ErrDuplicateID = errors.New("duplicate block id")

	// ErrEmptyID indicates a block was given an empty id.
	ErrEmptyID = errors.New("empty block id")

	// ErrNotImage indicates an uploaded file is not an image.
	ErrNotImage = errors.New("not an image")

	// ErrInvalidSelection indicates a selection range does not fit the content.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidMode indicates an unknown drag mode name.
	ErrInvalidMode = errors.New("invalid drag mode")
)
