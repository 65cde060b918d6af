package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("hotel not found")
	ErrBadInput = errors.New("bad input")

	ErrNoFiles         = fmt.Errorf("%w: no files uploaded", ErrBadInput)
	ErrInvalidFileType = fmt.Errorf("%w: invalid file type", ErrBadInput)
	ErrRoomsRequired   = fmt.Errorf("%w: rooms must be an array", ErrBadInput)
)
