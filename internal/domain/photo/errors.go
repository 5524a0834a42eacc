package photo

import "errors"

var (
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrDuplicateStoredName = errors.New("stored file name already exists")
)
